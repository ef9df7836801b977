package model

import (
	"time"

	"github.com/google/uuid"
)

// PossessionModel is the GORM-specific struct for the 'possessions' table.
// The table is owned by the item CRUD system; the pipeline reads it only.
type PossessionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:text;not null"`
	Brand        string    `gorm:"type:text"`
	Model        string    `gorm:"type:text"`
	Category     string    `gorm:"type:text"`
	PurchaseDate *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PossessionModel) TableName() string {
	return "possessions"
}

// WarrantyModel is the GORM-specific struct for the 'warranties' table,
// also owned by the item CRUD system.
type WarrantyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	PossessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	EndDate      time.Time `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WarrantyModel) TableName() string {
	return "warranties"
}

// ProfileModel is the GORM-specific struct for the 'profiles' table, owned by
// the account system. Only the push token is read here.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	PushToken *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
