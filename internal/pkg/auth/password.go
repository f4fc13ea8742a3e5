package auth

import "golang.org/x/crypto/bcrypt"

// defaultCost is the documented bcrypt work factor for new hashes.
const defaultCost = 10

// PasswordHasher defines hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash passwords. The salt is generated per
// hash and embedded in the output, and comparison is constant-time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
// A cost of zero selects the default work factor of 10.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = defaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks password against stored hash. A malformed hash fails
// closed with a non-nil error just like a mismatch.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
