package auth

import "github.com/alexedwards/argon2id"

// Hasher wraps the argon2id parameters used for account passwords.
type Hasher struct {
	params *argon2id.Params
}

// NewHasher creates a Hasher with the library's default parameters.
func NewHasher() *Hasher {
	return &Hasher{params: argon2id.DefaultParams}
}

// Hash derives a PHC-formatted hash from a plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.params)
}

// Verify reports whether the password matches the stored hash.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hash)
}
