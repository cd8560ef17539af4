package repositories

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"campus-market/dto"
	"campus-market/models"
)

type IItemRepository interface {
	FindAll(filter dto.ItemFilter) (*[]models.Item, error)
	FindRecent(limit int) (*[]models.Item, error)
	FindByCategory(category string, limit int) (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(newItem models.Item) (*models.Item, error)
	Update(item models.Item) (*models.Item, error)
	Delete(itemID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// allCategorySentinels are values that mean "no category restriction".
var allCategorySentinels = map[string]bool{
	"全部":             true,
	"all":            true,
	"all categories": true,
}

// applyFilter translates the optional listing parameters into query
// conditions. Malformed price bounds are treated as absent.
func applyFilter(db *gorm.DB, filter dto.ItemFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Category != "" && !allCategorySentinels[strings.ToLower(filter.Category)] {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != "" {
		if min, err := strconv.ParseFloat(filter.MinPrice, 64); err == nil {
			db = db.Where("price >= ?", min)
		}
	}
	if filter.MaxPrice != "" {
		if max, err := strconv.ParseFloat(filter.MaxPrice, 64); err == nil {
			db = db.Where("price <= ?", max)
		}
	}
	return db
}

func (r *ItemRepository) FindAll(filter dto.ItemFilter) (*[]models.Item, error) {
	var items []models.Item
	result := applyFilter(r.db, filter).
		Preload("Seller").
		Order("created_at DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindRecent(limit int) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Preload("Seller").Order("created_at DESC").Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindByCategory(category string, limit int) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Preload("Seller").
		Where("category = ?", category).
		Order("created_at DESC").
		Limit(limit).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindById(itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.Preload("Seller").First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(item models.Item) (*models.Item, error) {
	// Seller is loaded on reads; omit it so saving an item never writes users.
	result := r.db.Omit("Seller").Save(&item)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Delete(itemID uint) error {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
