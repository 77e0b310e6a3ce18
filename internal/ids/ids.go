package ids

import "github.com/google/uuid"

// Generator mints the shortid for every new document and embedded entry.
// Implementations must return a distinct value on every call.
type Generator interface {
	NextID() string
}

type uuidGenerator struct{}

func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NextID() string {
	return uuid.NewString()
}
