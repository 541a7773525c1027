package auth

import "fmt"

// ErrorKind classifies auth failures for inline rendering on the auth form.
type ErrorKind string

const (
	KindBadCredentials ErrorKind = "bad_credentials"
	KindEmailTaken     ErrorKind = "email_taken"
	KindNotSignedIn    ErrorKind = "not_signed_in"
	KindStore          ErrorKind = "store"
)

// Error is the auth-layer error type. Rendered inline on the auth form;
// never fatal.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the user-facing text for this error.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBadCredentials:
		return "Incorrect email or password."
	case KindEmailTaken:
		return "An account with this email already exists."
	case KindNotSignedIn:
		return "You need to sign in first."
	default:
		return "Something went wrong. Please try again."
	}
}
