package editlockrepo

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEditLockRepository implements EditLockRepository on the edit_locks table.
// Acquisition relies on the primary key: INSERT ... ON CONFLICT DO NOTHING
// stores at most one row per order however many callers race.
type GormEditLockRepository struct {
	db *gorm.DB
}

func NewGormEditLockRepository(db *gorm.DB) *GormEditLockRepository {
	return &GormEditLockRepository{db: db}
}

func (r *GormEditLockRepository) TryCreate(ctx context.Context, lock *editlock.Lock) (bool, error) {
	if err := lock.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(lock)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, errs.NewStorageErrorWithCause("create edit lock", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *GormEditLockRepository) Get(ctx context.Context, orderID kernel.ID) (*editlock.Lock, error) {
	var dto EditLockDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("edit lock", orderID.Int64())
		}
		return nil, errs.NewStorageErrorWithCause("read edit lock", err)
	}

	return toDomain(dto)
}

func (r *GormEditLockRepository) DeleteAcquiredBefore(
	ctx context.Context,
	orderID kernel.ID,
	cutoff time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND acquired_at < ?", orderID.Int64(), cutoff).
		Delete(&EditLockDTO{})
	if result.Error != nil {
		return false, errs.NewStorageErrorWithCause("delete expired edit lock", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormEditLockRepository) Delete(ctx context.Context, orderID kernel.ID) error {
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&EditLockDTO{})
	if result.Error != nil {
		return errs.NewStorageErrorWithCause("delete edit lock", result.Error)
	}

	return nil
}

func (r *GormEditLockRepository) DeleteAllAcquiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("acquired_at < ?", cutoff).Delete(&EditLockDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageErrorWithCause("purge edit locks", result.Error)
	}

	return result.RowsAffected, nil
}
