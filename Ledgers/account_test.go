package Ledgers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
)

func TestRegisterAndUniqueEmail(t *testing.T) {
	directory := NewAccountDirectory(Storage.NewMemoryStore())
	ctx := context.Background()

	exists, err := directory.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, exists)

	user, err := directory.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Empty(t, user.PasswordHash, "registered record must come back credential-stripped")

	exists, err = directory.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, exists)

	// second registration with the same email fails
	_, err = directory.Register(ctx, "Alice Again", "alice@example.com", "another pass")
	require.ErrorIs(t, err, ErrEmailTaken)

	// email comparison is case-insensitive
	_, err = directory.Register(ctx, "Shouty Alice", "ALICE@EXAMPLE.COM", "another pass")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindByCredentials(t *testing.T) {
	store := Storage.NewMemoryStore()
	directory := NewAccountDirectory(store)
	ctx := context.Background()

	registered, err := directory.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	found, err := directory.FindByCredentials(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, registered.ID, found.ID)
	require.Empty(t, found.PasswordHash)

	_, err = directory.FindByCredentials(ctx, "alice@example.com", "wrong pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = directory.FindByCredentials(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// The stored record carries a bcrypt hash, never the plaintext credential.
func TestStoredCredentialIsHashed(t *testing.T) {
	store := Storage.NewMemoryStore()
	directory := NewAccountDirectory(store)
	ctx := context.Background()

	_, err := directory.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	var users []Models.User
	require.NoError(t, store.Read(ctx, Storage.CollectionUsers, &users))
	require.Len(t, users, 1)
	require.NotEmpty(t, users[0].PasswordHash)
	require.NotEqual(t, "correct horse", users[0].PasswordHash)
	require.True(t, users[0].VerifyPassword("correct horse"))
}

func TestByID(t *testing.T) {
	directory := NewAccountDirectory(Storage.NewMemoryStore())
	ctx := context.Background()

	registered, err := directory.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	user, err := directory.ByID(ctx, registered.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Empty(t, user.PasswordHash)

	_, err = directory.ByID(ctx, "does-not-exist")
	require.ErrorIs(t, err, ErrUserNotFound)
}
