package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_products_on_seller"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);index"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0"`
	OnlineStock int       `gorm:"not null;default:0;check:online_stock >= 0"`
	IsVisible   bool      `gorm:"not null;default:true"`
	Rating      float64   `gorm:"type:decimal(3,1);not null;default:0"`
	RatingCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
