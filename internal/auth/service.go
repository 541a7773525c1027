package auth

import (
	"context"
	"net/mail"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// Account is the stored account record as the auth layer sees it.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Premium      bool
}

// Store is the persistence contract the session tracker depends on.
// Implemented by internal/store.
type Store interface {
	CreateAccount(ctx context.Context, a Account) error
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	AccountByID(ctx context.Context, id string) (*Account, error)
	SetPremium(ctx context.Context, accountID string, premium bool) error

	// The persisted session is a single row: which account, if any, was
	// signed in when the app last ran.
	SaveActiveSession(ctx context.Context, accountID string) error
	ActiveSession(ctx context.Context) (string, error)
	ClearActiveSession(ctx context.Context) error
}

// Service tracks the current session against the account store and pushes
// a Change to every subscriber on sign-in, sign-out, restore, and
// entitlement grant.
type Service struct {
	store Store

	mu      sync.Mutex
	current Session
	subs    map[int]chan Change
	nextSub int
}

// NewService creates a Service starting from the anonymous session.
func NewService(store Store) *Service {
	return &Service{
		store:   store,
		current: Anonymous(),
		subs:    make(map[int]chan Change),
	}
}

// Current returns the session as of the last state change.
func (s *Service) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers for session-changed pushes. The returned release
// function must be called at teardown; calling it more than once is safe,
// the channel is closed exactly once.
func (s *Service) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 8)
	s.subs[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, release
}

// Restore attempts to recover the persisted session at startup. Any failure
// degrades silently to the anonymous session; app start is never blocked by
// a broken session row.
func (s *Service) Restore(ctx context.Context) Session {
	accountID, err := s.store.ActiveSession(ctx)
	if err != nil || accountID == "" {
		if err != nil {
			log.Debug().Err(err).Msg("session restore failed, starting anonymous")
		}
		return s.setSession(Anonymous())
	}

	acct, err := s.store.AccountByID(ctx, accountID)
	if err != nil || acct == nil {
		log.Debug().Str("account", accountID).Msg("persisted session points at missing account")
		_ = s.store.ClearActiveSession(ctx)
		return s.setSession(Anonymous())
	}

	return s.setSession(sessionFor(acct))
}

// SignUp creates an account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (Session, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return s.Current(), &Error{Kind: KindBadCredentials, Err: err}
	}
	if len(password) < MinPasswordLen {
		return s.Current(), &Error{Kind: KindBadCredentials}
	}

	existing, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		return s.Current(), &Error{Kind: KindStore, Err: err}
	}
	if existing != nil {
		return s.Current(), &Error{Kind: KindEmailTaken}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return s.Current(), &Error{Kind: KindStore, Err: err}
	}

	acct := Account{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  name,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateAccount(ctx, acct); err != nil {
		return s.Current(), &Error{Kind: KindStore, Err: err}
	}
	if err := s.store.SaveActiveSession(ctx, acct.ID); err != nil {
		log.Warn().Err(err).Msg("could not persist session after signup")
	}

	return s.setSession(sessionFor(&acct)), nil
}

// SignIn authenticates against the account store and signs in.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	acct, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		return s.Current(), &Error{Kind: KindStore, Err: err}
	}
	if acct == nil {
		return s.Current(), &Error{Kind: KindBadCredentials}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return s.Current(), &Error{Kind: KindBadCredentials}
	}
	if err := s.store.SaveActiveSession(ctx, acct.ID); err != nil {
		log.Warn().Err(err).Msg("could not persist session after sign-in")
	}

	return s.setSession(sessionFor(acct)), nil
}

// SignOut destroys the current session and resets to anonymous.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.store.ClearActiveSession(ctx); err != nil {
		// The in-memory session is reset regardless.
		log.Warn().Err(err).Msg("could not clear persisted session")
	}
	s.setSession(Anonymous())
	return nil
}

// GrantEntitlement marks the current session premium. Trust boundary: the
// caller must have already confirmed manual payment completion; there is no
// verification here.
func (s *Service) GrantEntitlement(ctx context.Context) (Session, error) {
	cur := s.Current()
	if !cur.Authenticated || cur.User == nil {
		return cur, &Error{Kind: KindNotSignedIn}
	}
	if err := s.store.SetPremium(ctx, cur.User.ID, true); err != nil {
		return cur, &Error{Kind: KindStore, Err: err}
	}

	cur.Entitlement = EntitlementPremium
	return s.setSession(cur), nil
}

// setSession swaps the current session and notifies subscribers. Slow
// subscribers lose pushes rather than block the caller.
func (s *Service) setSession(next Session) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = next
	for _, ch := range s.subs {
		select {
		case ch <- Change{Session: next}:
		default:
		}
	}
	return next
}

func sessionFor(a *Account) Session {
	ent := EntitlementFree
	if a.Premium {
		ent = EntitlementPremium
	}
	return Session{
		Authenticated: true,
		User: &User{
			ID:          a.ID,
			Email:       a.Email,
			DisplayName: a.DisplayName,
		},
		Entitlement: ent,
	}
}
