// Package clientrepo reads client records for orders that reference them.
package clientrepo

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// ClientDTO mirrors the clients table owned by the client module.
type ClientDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

type GormClientDirectory struct {
	db *gorm.DB
}

func NewGormClientDirectory(db *gorm.DB) *GormClientDirectory {
	return &GormClientDirectory{db: db}
}

// Find reports found=false without an error when the client does not exist.
func (d *GormClientDirectory) Find(ctx context.Context, id kernel.ID) (*ports.ClientRecord, bool, error) {
	var dtos []ClientDTO
	if err := d.db.WithContext(ctx).Where("id = ?", id.Int64()).Limit(1).Find(&dtos).Error; err != nil {
		return nil, false, errs.NewStorageErrorWithCause("read client", err)
	}
	if len(dtos) == 0 {
		return nil, false, nil
	}

	return &ports.ClientRecord{ID: id, Name: dtos[0].Name}, true, nil
}
