package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor applied to every new password.
const HashCost = 12

// Hasher performs one-way password hashing and verification.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the default work factor.
func NewHasher() *Hasher {
	return &Hasher{cost: HashCost}
}

// Hash derives a salted hash from the plaintext password. The salt is
// random, so hashing the same password twice yields different values.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash is treated as a mismatch, never an error.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
