package models

import "time"

// Item is a marketplace listing. Deletion is a hard delete, so there is no
// soft-delete column. SellerID is set once at creation and never updated.
type Item struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Category    string  `gorm:"not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	ImagePath   string  `json:"imagePath"`
	SellerID    uint    `gorm:"not null" json:"-"`
	Seller      User    `gorm:"foreignKey:SellerID" json:"seller"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
