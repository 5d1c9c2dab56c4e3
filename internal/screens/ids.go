package screens

import (
	"github.com/google/uuid"

	"sakura/internal/core"
)

// IDGenerator hands out fresh, creation-ordered ids.
type IDGenerator interface {
	NewID() core.ID
}

// UUIDGenerator issues UUIDv7 ids, which sort by creation time.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() core.ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the system random source is broken.
		return core.ID(uuid.NewString())
	}
	return core.ID(id.String())
}
