package Models

import (
	"html"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. PasswordHash is serialized under the
// "password" key of the users collection and only ever holds a bcrypt hash.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password,omitempty"`
}

// PrepareGive strips the credential before the record leaves the directory.
func (user *User) PrepareGive() {
	user.PasswordHash = ""
}

// SetPassword hashes and stores the credential, and normalizes the name.
func (user *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	user.Name = html.EscapeString(strings.TrimSpace(user.Name))
	return nil
}

// VerifyPassword compares a candidate credential against the stored hash.
func (user *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
