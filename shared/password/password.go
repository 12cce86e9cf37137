package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest input bcrypt hashes without truncating.
const MaxLength = 72

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrTooLong           = fmt.Errorf("password cannot exceed %d bytes", MaxLength)
	ErrHashingPassword   = errors.New("failed to hash password")
	ErrVerifyingPassword = errors.New("failed to verify password")
)

// decoy is compared against when the account does not exist so unknown
// emails cost the same as a wrong password.
var decoy, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), bcrypt.DefaultCost)

func Hash(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrEmptyPassword
	case len(password) > MaxLength:
		return "", ErrTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// Verify returns ErrInvalidPassword on any mismatch.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}
}

// Burn spends the time of one verification without a stored hash.
func Burn(password string) {
	_ = bcrypt.CompareHashAndPassword(decoy, []byte(password))
}

// NeedsRehash reports whether hash was made with a weaker cost than new hashes use.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))

	return err != nil || cost < bcrypt.DefaultCost
}
