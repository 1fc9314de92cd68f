package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel is the GORM-specific struct for the 'sellers' table.
// Latitude/Longitude are nullable: a seller without a configured shop
// location stores NULLs, which map to a nil Location on the entity.
type SellerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ShopName    string    `gorm:"type:varchar(255)"`
	ShopAddress string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100);index"`
	Pincode     string    `gorm:"type:varchar(20)"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
