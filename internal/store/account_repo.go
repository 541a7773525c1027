package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/azzautomation2026/shama/internal/auth"
)

// AccountRepo implements auth.Store on top of the accounts and
// active_sessions tables.
type AccountRepo struct {
	db *gorm.DB
}

var _ auth.Store = (*AccountRepo)(nil)

// Accounts returns the account repository backed by this store.
func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{db: s.db}
}

func (r *AccountRepo) CreateAccount(ctx context.Context, a auth.Account) error {
	rec := Account{
		ID:           a.ID,
		Email:        a.Email,
		DisplayName:  a.DisplayName,
		PasswordHash: a.PasswordHash,
		Premium:      a.Premium,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return &PersistenceError{Op: "create account", Err: err}
	}
	return nil
}

func (r *AccountRepo) AccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	var rec Account
	err := r.db.WithContext(ctx).First(&rec, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "account by email", Err: err}
	}
	return toAuthAccount(&rec), nil
}

func (r *AccountRepo) AccountByID(ctx context.Context, id string) (*auth.Account, error) {
	var rec Account
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "account by id", Err: err}
	}
	return toAuthAccount(&rec), nil
}

func (r *AccountRepo) SetPremium(ctx context.Context, accountID string, premium bool) error {
	res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", accountID).Update("premium", premium)
	if res.Error != nil {
		return &PersistenceError{Op: "set premium", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &PersistenceError{Op: "set premium", Err: gorm.ErrRecordNotFound}
	}
	return nil
}

// SaveActiveSession replaces whatever session row exists with one for the
// given account.
func (r *AccountRepo) SaveActiveSession(ctx context.Context, accountID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ActiveSession{}).Error; err != nil {
			return err
		}
		return tx.Create(&ActiveSession{AccountID: accountID}).Error
	})
	if err != nil {
		return &PersistenceError{Op: "save session", Err: err}
	}
	return nil
}

func (r *AccountRepo) ActiveSession(ctx context.Context) (string, error) {
	var rec ActiveSession
	err := r.db.WithContext(ctx).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", &PersistenceError{Op: "load session", Err: err}
	}
	return rec.AccountID, nil
}

func (r *AccountRepo) ClearActiveSession(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&ActiveSession{}).Error; err != nil {
		return &PersistenceError{Op: "clear session", Err: err}
	}
	return nil
}

func toAuthAccount(rec *Account) *auth.Account {
	return &auth.Account{
		ID:           rec.ID,
		Email:        rec.Email,
		DisplayName:  rec.DisplayName,
		PasswordHash: rec.PasswordHash,
		Premium:      rec.Premium,
	}
}
