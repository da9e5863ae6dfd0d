package auth

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies keyed password hashes: the password is first
// mixed with a server-side secret via HMAC-SHA256, then run through bcrypt.
// A leaked users table alone is not enough to mount an offline attack
// without the secret.
type Hasher struct {
	secret []byte
	cost   int
}

// NewHasher builds a hasher with the given secret and bcrypt cost.
func NewHasher(secret string, cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{secret: []byte(secret), cost: cost}
}

// Hash returns the bcrypt digest of the peppered password.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(h.pepper(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its stored digest.
func (h *Hasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), h.pepper(plain))
}

func (h *Hasher) pepper(password string) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
