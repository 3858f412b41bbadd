package repository

import (
	"time"

	"github.com/google/uuid"
)

// OwnerModel is the GORM model for the owners table.
type OwnerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Email     string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (OwnerModel) TableName() string { return "owners" }

// DogModel is the GORM model for the dogs table. OwnerID is a plain
// reference column with no foreign key constraint.
type DogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      *string   `gorm:"type:text"`
	Age       *uint8    `gorm:"type:smallint"`
	Breed     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (DogModel) TableName() string { return "dogs" }

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime       time.Time `gorm:"not null;index"`
	DurationMinutes int       `gorm:"not null;default:0"`
	Notes           string    `gorm:"type:text"`
	Cancelled       bool      `gorm:"not null;default:false;index"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string { return "bookings" }

// AllModels lists the models owned by the walking repository, for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{&OwnerModel{}, &DogModel{}, &BookingModel{}}
}
