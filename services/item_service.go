package services

import (
	"errors"

	"gorm.io/gorm"

	"campus-market/dto"
	"campus-market/models"
	"campus-market/repositories"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrNotItemOwner = errors.New("not the item owner")
)

// OwnsItem is the ownership predicate shared by every mutating operation
// on both presentation surfaces.
func OwnsItem(userID uint, item *models.Item) bool {
	return item.SellerID == userID
}

type IItemService interface {
	FindAll(filter dto.ItemFilter) (*[]models.Item, error)
	FindRecent(limit int) (*[]models.Item, error)
	FindByCategory(category string, limit int) (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(input dto.ItemInput, sellerID uint) (*models.Item, error)
	Update(itemID uint, sellerID uint, input dto.ItemInput) (*models.Item, error)
	Delete(itemID uint, sellerID uint) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll(filter dto.ItemFilter) (*[]models.Item, error) {
	return s.repository.FindAll(filter)
}

func (s *ItemService) FindRecent(limit int) (*[]models.Item, error) {
	return s.repository.FindRecent(limit)
}

func (s *ItemService) FindByCategory(category string, limit int) (*[]models.Item, error) {
	return s.repository.FindByCategory(category, limit)
}

func (s *ItemService) FindById(itemID uint) (*models.Item, error) {
	item, err := s.repository.FindById(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create persists a new item. The seller is always the authenticated user;
// nothing in the input can set it.
func (s *ItemService) Create(input dto.ItemInput, sellerID uint) (*models.Item, error) {
	newItem := models.Item{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		SellerID:    sellerID,
	}
	if input.Price != nil {
		newItem.Price = *input.Price
	}
	if input.ImagePath != nil {
		newItem.ImagePath = *input.ImagePath
	}
	return s.repository.Create(newItem)
}

func (s *ItemService) Update(itemID uint, sellerID uint, input dto.ItemInput) (*models.Item, error) {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return nil, err
	}
	if !OwnsItem(sellerID, targetItem) {
		return nil, ErrNotItemOwner
	}

	targetItem.Title = input.Title
	targetItem.Category = input.Category
	targetItem.Description = input.Description
	if input.Price != nil {
		targetItem.Price = *input.Price
	}
	if input.ImagePath != nil {
		targetItem.ImagePath = *input.ImagePath
	}
	return s.repository.Update(*targetItem)
}

func (s *ItemService) Delete(itemID uint, sellerID uint) error {
	targetItem, err := s.FindById(itemID)
	if err != nil {
		return err
	}
	if !OwnsItem(sellerID, targetItem) {
		return ErrNotItemOwner
	}
	return s.repository.Delete(itemID)
}
