package bookkeeping

import (
	"time"

	"github.com/google/uuid"
)

// EntityMeta carries the identity and audit timestamps shared by ledger
// entities. It is embedded by composition; there is no base-entity type.
type EntityMeta struct {
	UID        string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewEntityMeta creates a fresh identity with both timestamps set to now.
func NewEntityMeta() EntityMeta {
	now := time.Now().UTC()
	return EntityMeta{UID: uuid.NewString(), CreatedAt: now, ModifiedAt: now}
}

// Touch records a modification.
func (e *EntityMeta) Touch() { e.ModifiedAt = time.Now().UTC() }
