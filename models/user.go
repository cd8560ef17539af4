package models

import "time"

type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Username  string `gorm:"not null;unique" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	Items     []Item `gorm:"foreignKey:SellerID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
