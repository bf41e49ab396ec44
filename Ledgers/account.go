package Ledgers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

var (
	// ErrEmailTaken rejects a registration whose email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// a caller cannot probe which one failed.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	// ErrUserNotFound reports an unknown user id.
	ErrUserNotFound = errors.New("user not found")
)

// AccountDirectory owns the users collection. Email is the unique key;
// accounts are never deleted. Every record handed out has the credential
// hash stripped.
type AccountDirectory struct {
	store Storage.Store
	log   *zap.Logger
}

func NewAccountDirectory(store Storage.Store) *AccountDirectory {
	return &AccountDirectory{store: store, log: Utils.GetLogger()}
}

func (d *AccountDirectory) load(ctx context.Context) ([]Models.User, error) {
	var users []Models.User
	if err := d.store.Read(ctx, Storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByCredentials scans for the email and verifies the password against
// the stored bcrypt hash.
func (d *AccountDirectory) FindByCredentials(ctx context.Context, email, password string) (Models.User, error) {
	users, err := d.load(ctx)
	if err != nil {
		return Models.User{}, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) && user.VerifyPassword(password) {
			user.PrepareGive()
			return user, nil
		}
	}
	return Models.User{}, ErrInvalidCredentials
}

// ExistsByEmail is the uniqueness check run before registration.
func (d *AccountDirectory) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	users, err := d.load(ctx)
	if err != nil {
		return false, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Register appends a new account and returns it credential-stripped, ready
// for the implicit login that follows signup.
func (d *AccountDirectory) Register(ctx context.Context, name, email, password string) (Models.User, error) {
	users, err := d.load(ctx)
	if err != nil {
		return Models.User{}, err
	}
	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return Models.User{}, ErrEmailTaken
		}
	}

	user := Models.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}
	if err := user.SetPassword(password); err != nil {
		return Models.User{}, err
	}

	users = append(users, user)
	if err := d.store.Write(ctx, Storage.CollectionUsers, users); err != nil {
		return Models.User{}, err
	}
	d.log.Info("account registered", zap.String("email", email))

	user.PrepareGive()
	return user, nil
}

// ByID looks up an account, credential-stripped.
func (d *AccountDirectory) ByID(ctx context.Context, id string) (Models.User, error) {
	users, err := d.load(ctx)
	if err != nil {
		return Models.User{}, err
	}
	for _, user := range users {
		if user.ID == id {
			user.PrepareGive()
			return user, nil
		}
	}
	return Models.User{}, ErrUserNotFound
}
