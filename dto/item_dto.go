package dto

import (
	"time"

	"campus-market/models"
)

// ItemForm is the page-surface payload. Price stays a string so invalid
// input survives the round trip back into the form.
type ItemForm struct {
	Title       string `form:"title"`
	Category    string `form:"category"`
	Price       string `form:"price"`
	Description string `form:"description"`
}

// ItemInput is the JSON API payload for create and update. Price is a
// pointer so a missing price is distinguishable from zero; ImagePath is a
// pointer so update only touches it when the field was sent.
type ItemInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImagePath   *string  `json:"imagePath"`
}

// ItemFilter carries the optional listing query parameters. Price bounds
// stay strings; malformed numbers are treated as absent bounds.
type ItemFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
}

type SellerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ItemResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	Description string         `json:"description"`
	ImagePath   string         `json:"imagePath"`
	Seller      SellerResponse `json:"seller"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// NewItemResponse maps a model onto the wire representation.
func NewItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		ImagePath:   item.ImagePath,
		Seller:      SellerResponse{ID: item.SellerID, Username: item.Seller.Username},
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// NewItemResponses maps a slice of models.
func NewItemResponses(items []models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i := range items {
		resp[i] = NewItemResponse(items[i])
	}
	return resp
}
