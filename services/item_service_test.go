package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus-market/dto"
	"campus-market/infra"
	"campus-market/models"
	"campus-market/repositories"
)

func setupItemService(t *testing.T) (IItemService, *gorm.DB) {
	t.Helper()
	db := infra.SetupTestDB()
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))
	return NewItemService(repositories.NewItemRepository(db)), db
}

func createSeller(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func itemInput(title string, price float64) dto.ItemInput {
	return dto.ItemInput{Title: title, Category: "书籍", Price: &price}
}

func TestCreateSetsSellerFromCaller(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")

	item, err := svc.Create(itemInput("Calculus Textbook", 15), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, item.SellerID)
	assert.Equal(t, 15.0, item.Price)
}

func TestUpdateByNonOwnerRejected(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")
	bob := createSeller(t, db, "bob")

	item, err := svc.Create(itemInput("Calculus Textbook", 15), alice.ID)
	require.NoError(t, err)

	_, err = svc.Update(item.ID, bob.ID, itemInput("Hijacked", 1))
	assert.ErrorIs(t, err, ErrNotItemOwner)

	// The item is untouched.
	unchanged, err := svc.FindById(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calculus Textbook", unchanged.Title)
	assert.Equal(t, 15.0, unchanged.Price)
	assert.Equal(t, alice.ID, unchanged.SellerID)
}

func TestUpdateByOwner(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")

	item, err := svc.Create(itemInput("Calculus Textbook", 15), alice.ID)
	require.NoError(t, err)

	input := itemInput("Linear Algebra Textbook", 12)
	input.Description = "second edition"
	updated, err := svc.Update(item.ID, alice.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra Textbook", updated.Title)
	assert.Equal(t, 12.0, updated.Price)
	assert.Equal(t, "second edition", updated.Description)
	// Seller never changes on update.
	assert.Equal(t, alice.ID, updated.SellerID)
}

func TestUpdateKeepsImagePathUnlessProvided(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")

	path := "uploads/image-abc.jpg"
	input := itemInput("Calculus Textbook", 15)
	input.ImagePath = &path
	item, err := svc.Create(input, alice.ID)
	require.NoError(t, err)

	updated, err := svc.Update(item.ID, alice.ID, itemInput("Calculus Textbook", 10))
	require.NoError(t, err)
	assert.Equal(t, path, updated.ImagePath)

	newPath := "uploads/image-def.jpg"
	withImage := itemInput("Calculus Textbook", 10)
	withImage.ImagePath = &newPath
	updated, err = svc.Update(item.ID, alice.ID, withImage)
	require.NoError(t, err)
	assert.Equal(t, newPath, updated.ImagePath)
}

func TestDeleteByNonOwnerRejected(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")
	bob := createSeller(t, db, "bob")

	item, err := svc.Create(itemInput("Calculus Textbook", 15), alice.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(item.ID, bob.ID), ErrNotItemOwner)

	_, err = svc.FindById(item.ID)
	assert.NoError(t, err)
}

func TestDeleteByOwner(t *testing.T) {
	svc, db := setupItemService(t)
	alice := createSeller(t, db, "alice")

	item, err := svc.Create(itemInput("Calculus Textbook", 15), alice.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID, alice.ID))

	_, err = svc.FindById(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, svc.Delete(item.ID, alice.ID), ErrItemNotFound)
}

func TestFindByIdMissing(t *testing.T) {
	svc, _ := setupItemService(t)
	_, err := svc.FindById(999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestOwnsItem(t *testing.T) {
	item := &models.Item{SellerID: 3}
	assert.True(t, OwnsItem(3, item))
	assert.False(t, OwnsItem(4, item))
}
