package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and audit timestamps shared by every
// persisted domain type. GORM maintains CreatedAt and UpdatedAt.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BaseAggregateRoot extends BaseEntity with a version counter used for
// optimistic locking on writes.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// NewBaseAggregateRoot assigns a fresh id, stamps both timestamps and
// starts the version at 1.
func NewBaseAggregateRoot() BaseAggregateRoot {
	now := time.Now()
	return BaseAggregateRoot{
		BaseEntity: BaseEntity{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Version: 1,
	}
}

func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion must be called by every state-changing aggregate method
// so stale writers fail the version check instead of overwriting.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}
