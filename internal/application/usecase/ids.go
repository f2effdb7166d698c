package usecase

import "github.com/google/uuid"

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// UUIDGenerator returns an IDGenerator backed by random UUIDs.
func UUIDGenerator() IDGenerator {
	return uuid.NewString
}
