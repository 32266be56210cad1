// Package chatrepo gives the order core the one operation it needs on the
// discussion module's table: removing an order's records.
package chatrepo

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// ChatRecordDTO mirrors the order_chats table owned by the discussion module.
type ChatRecordDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	Author    string    `gorm:"size:255;not null;default:''"`
	Body      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ChatRecordDTO) TableName() string {
	return "order_chats"
}

type GormChatRecordRepository struct {
	db *gorm.DB
}

func NewGormChatRecordRepository(db *gorm.DB) *GormChatRecordRepository {
	return &GormChatRecordRepository{db: db}
}

func (r *GormChatRecordRepository) DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&ChatRecordDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageErrorWithCause("delete chat records", result.Error)
	}

	return result.RowsAffected, nil
}
