package hashing

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// verify Bcrypt implements the Hasher interface in compile time
var _ Hasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a per-hash random salt. The cost makes
// hashing intentionally expensive to resist brute force.
type Bcrypt struct {
	cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (b *Bcrypt) Compare(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	// A malformed stored hash also reads as a mismatch rather than a fault:
	// the caller must not be able to tell the difference.
	if errors.Is(err, bcrypt.ErrHashTooShort) {
		return false, nil
	}
	var invalidErr bcrypt.InvalidHashPrefixError
	if errors.As(err, &invalidErr) {
		return false, nil
	}

	return false, err
}
