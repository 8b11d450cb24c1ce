package tablerepo

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/table"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dining table to the database. A duplicate label within the
// same restaurant violates the unique index and is returned as a conflict.
// Relies on the connection being opened with TranslateError enabled.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("table label %q already in use", aggregate.Label()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dining table by ID.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
