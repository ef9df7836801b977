// Package model contains the GORM-specific table structs.
package model

import (
	"time"

	"attic/internal/domain/entity"

	"github.com/google/uuid"
)

// RecallModel is the GORM-specific struct for the 'recalls' table.
// (source, external_id) is the idempotency key for repeated ingestion runs.
type RecallModel struct {
	ID               uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Source           string                   `gorm:"type:text;not null;uniqueIndex:idx_recalls_source_external_id"`
	ExternalID       string                   `gorm:"type:text;not null;uniqueIndex:idx_recalls_source_external_id"`
	Title            string                   `gorm:"type:text;not null"`
	Description      *string                  `gorm:"type:text"`
	Hazard           *string                  `gorm:"type:text"`
	Remedy           *string                  `gorm:"type:text"`
	URL              *string                  `gorm:"type:text"`
	AffectedProducts []entity.AffectedProduct `gorm:"type:jsonb;serializer:json"`
	RecallDate       *time.Time               `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecallModel) TableName() string {
	return "recalls"
}
