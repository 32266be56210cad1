// Package editlockrepo stores edit locks as rows keyed by order, so that every
// process sharing the database sees the same locks.
package editlockrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type EditLockDTO struct {
	OrderID    int64     `gorm:"primaryKey;autoIncrement:false"`
	HolderID   string    `gorm:"size:255;not null"`
	Token      uuid.UUID `gorm:"type:uuid;not null"`
	AcquiredAt time.Time `gorm:"not null;index"`
}

func (EditLockDTO) TableName() string {
	return "edit_locks"
}

func fromDomain(lock *editlock.Lock) EditLockDTO {
	return EditLockDTO{
		OrderID:    lock.OrderID().Int64(),
		HolderID:   lock.HolderID(),
		Token:      lock.Token().UUID(),
		AcquiredAt: lock.AcquiredAt(),
	}
}

func toDomain(dto EditLockDTO) (*editlock.Lock, error) {
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	token, err := kernel.LockTokenFromString(dto.Token.String())
	if err != nil {
		return nil, err
	}

	return editlock.RestoreLock(orderID, dto.HolderID, token, dto.AcquiredAt)
}
