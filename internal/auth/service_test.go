package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	accounts map[string]Account // by id
	byEmail  map[string]string  // email -> id
	active   string
	failAll  bool
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]Account),
		byEmail:  make(map[string]string),
	}
}

var errBroken = errors.New("store broken")

func (m *memStore) CreateAccount(_ context.Context, a Account) error {
	if m.failAll {
		return errBroken
	}
	m.accounts[a.ID] = a
	m.byEmail[a.Email] = a.ID
	return nil
}

func (m *memStore) AccountByEmail(_ context.Context, email string) (*Account, error) {
	if m.failAll {
		return nil, errBroken
	}
	id, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	a := m.accounts[id]
	return &a, nil
}

func (m *memStore) AccountByID(_ context.Context, id string) (*Account, error) {
	if m.failAll {
		return nil, errBroken
	}
	a, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memStore) SetPremium(_ context.Context, id string, premium bool) error {
	if m.failAll {
		return errBroken
	}
	a, ok := m.accounts[id]
	if !ok {
		return errors.New("no such account")
	}
	a.Premium = premium
	m.accounts[id] = a
	return nil
}

func (m *memStore) SaveActiveSession(_ context.Context, id string) error {
	if m.failAll {
		return errBroken
	}
	m.active = id
	return nil
}

func (m *memStore) ActiveSession(_ context.Context) (string, error) {
	if m.failAll {
		return "", errBroken
	}
	return m.active, nil
}

func (m *memStore) ClearActiveSession(_ context.Context) error {
	if m.failAll {
		return errBroken
	}
	m.active = ""
	return nil
}

func TestSignUpSignInRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())

	sess, err := svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "a@x.com", sess.User.Email)
	assert.Equal(t, EntitlementFree, sess.Entitlement)

	require.NoError(t, svc.SignOut(ctx))
	assert.False(t, svc.Current().Authenticated)

	sess, err = svc.SignIn(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
}

func TestSignInBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())
	_, err := svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "a@x.com", "wrongpass")
	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, KindBadCredentials, aerr.Kind)

	_, err = svc.SignIn(ctx, "nobody@x.com", "secret123")
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, KindBadCredentials, aerr.Kind)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())
	_, err := svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "a@x.com", "different9", "B")
	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, KindEmailTaken, aerr.Kind)
}

func TestRestorePersistedSession(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	svc := NewService(st)
	_, err := svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)

	// A fresh service sees the persisted session.
	svc2 := NewService(st)
	sess := svc2.Restore(ctx)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "a@x.com", sess.User.Email)
}

func TestRestoreFailureDegradesToAnonymous(t *testing.T) {
	st := newMemStore()
	st.failAll = true
	svc := NewService(st)

	sess := svc.Restore(context.Background())
	assert.False(t, sess.Authenticated)
	assert.Equal(t, EntitlementFree, sess.Entitlement)
}

func TestGrantEntitlement(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	svc := NewService(st)

	// Anonymous grant is rejected.
	_, err := svc.GrantEntitlement(ctx)
	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, KindNotSignedIn, aerr.Kind)

	_, err = svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)

	sess, err := svc.GrantEntitlement(ctx)
	require.NoError(t, err)
	assert.True(t, sess.Premium())

	// The grant survives a restore.
	sess = NewService(st).Restore(ctx)
	assert.Equal(t, EntitlementPremium, sess.Entitlement)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore())

	ch, release := svc.Subscribe()
	defer release()

	_, err := svc.SignUp(ctx, "a@x.com", "secret123", "A")
	require.NoError(t, err)

	change := <-ch
	assert.True(t, change.Session.Authenticated)

	require.NoError(t, svc.SignOut(ctx))
	change = <-ch
	assert.False(t, change.Session.Authenticated)
}

func TestSubscribeReleaseIsIdempotent(t *testing.T) {
	svc := NewService(newMemStore())
	ch, release := svc.Subscribe()

	release()
	release() // second call must not panic

	_, open := <-ch
	assert.False(t, open, "channel closed after release")

	// A change after release reaches no one and does not panic.
	svc.setSession(Anonymous())
}
