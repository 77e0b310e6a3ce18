package password

import "golang.org/x/crypto/bcrypt"

const DefaultCost = 5

// Hasher is the credential collaborator: hashing on registration and
// password change, verification on login.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

type bcryptHasher struct {
	cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *bcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
