package auth

// Entitlement is a session's tier. It gates the free-tier generation quota.
type Entitlement string

const (
	EntitlementFree    Entitlement = "free"
	EntitlementPremium Entitlement = "premium"
)

// User identifies an authenticated account.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// Session is the tracker's view of who is signed in. The zero value is the
// anonymous session.
type Session struct {
	Authenticated bool
	User          *User
	Entitlement   Entitlement
}

// Anonymous returns the signed-out session.
func Anonymous() Session {
	return Session{Entitlement: EntitlementFree}
}

// Premium reports whether the session has the premium entitlement.
func (s Session) Premium() bool {
	return s.Authenticated && s.Entitlement == EntitlementPremium
}

// Change is pushed to subscribers whenever the session source of truth
// reports sign-in, sign-out, entitlement change, or restore.
type Change struct {
	Session Session
}
