package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "domus/internal/errors"
	"domus/internal/model"
)

// MockWishlistRepository is a mock implementation of WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) FindByCustomer(ctx context.Context, customerID uint) (*model.Wishlist, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Create(ctx context.Context, wishlist *model.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) Update(ctx context.Context, wishlist *model.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func TestWishlistService_Get_MissingWishlistIsEmptyList(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	houses, err := svc.Get(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, houses)
	assert.NotNil(t, houses)
}

func TestWishlistService_Add_CreatesLazily(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockHouses.On("FindByID", mock.Anything, uint(5)).Return(&model.House{ID: 5}, nil)
	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
	mockWishlists.On("Create", mock.Anything, mock.AnythingOfType("*model.Wishlist")).Return(nil)
	mockHouses.On("FindByIDs", mock.Anything, []uint{5}).Return([]model.House{{ID: 5}}, nil)

	houses, err := svc.Add(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Len(t, houses, 1)
	assert.Equal(t, uint(5), houses[0].ID)
	mockWishlists.AssertExpectations(t)
}

func TestWishlistService_Add_DuplicateRejected(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockHouses.On("FindByID", mock.Anything, uint(5)).Return(&model.House{ID: 5}, nil)
	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(&model.Wishlist{
		CustomerID: 1,
		HouseIDs:   []uint{5, 9},
	}, nil)

	houses, err := svc.Add(context.Background(), 1, 5)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyInWishlist)
	assert.Nil(t, houses)
	// The stored list must be unchanged after the failed call.
	mockWishlists.AssertNotCalled(t, "Update")
}

func TestWishlistService_Add_HouseMustExist(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockHouses.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Add(context.Background(), 1, 404)

	assert.ErrorIs(t, err, apperrors.ErrHouseNotFound)
	mockWishlists.AssertNotCalled(t, "FindByCustomer")
}

func TestWishlistService_Add_CreateRaceFallsBackToAppend(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockHouses.On("FindByID", mock.Anything, uint(5)).Return(&model.House{ID: 5}, nil)
	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).
		Return(nil, gorm.ErrRecordNotFound).Once()
	mockWishlists.On("Create", mock.Anything, mock.AnythingOfType("*model.Wishlist")).
		Return(gorm.ErrDuplicatedKey)
	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).
		Return(&model.Wishlist{CustomerID: 1, HouseIDs: []uint{3}}, nil).Once()
	mockWishlists.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wishlist) bool {
		return len(w.HouseIDs) == 2 && w.HouseIDs[1] == 5
	})).Return(nil)
	mockHouses.On("FindByIDs", mock.Anything, []uint{3, 5}).
		Return([]model.House{{ID: 3}, {ID: 5}}, nil)

	houses, err := svc.Add(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Len(t, houses, 2)
	mockWishlists.AssertExpectations(t)
}

func TestWishlistService_Remove_IsIdempotent(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(&model.Wishlist{
		CustomerID: 1,
		HouseIDs:   []uint{3, 9},
	}, nil)
	mockHouses.On("FindByIDs", mock.Anything, []uint{3, 9}).
		Return([]model.House{{ID: 3}, {ID: 9}}, nil)

	houses, err := svc.Remove(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Len(t, houses, 2)
	mockWishlists.AssertNotCalled(t, "Update")
}

func TestWishlistService_Remove_Member(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(&model.Wishlist{
		CustomerID: 1,
		HouseIDs:   []uint{3, 5, 9},
	}, nil)
	mockWishlists.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wishlist) bool {
		return len(w.HouseIDs) == 2 && !w.Contains(5)
	})).Return(nil)
	mockHouses.On("FindByIDs", mock.Anything, []uint{3, 9}).
		Return([]model.House{{ID: 3}, {ID: 9}}, nil)

	houses, err := svc.Remove(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Len(t, houses, 2)
	mockWishlists.AssertExpectations(t)
}

func TestWishlistService_Remove_MissingWishlist(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	houses, err := svc.Remove(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Empty(t, houses)
}

func TestWishlistService_Clear(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("DeleteByCustomer", mock.Anything, uint(1)).Return(nil)

	assert.NoError(t, svc.Clear(context.Background(), 1))
	mockWishlists.AssertExpectations(t)
}

func TestWishlistService_Contains_MissingWishlistIsFalse(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	contains, err := svc.Contains(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.False(t, contains)
}

func TestWishlistService_Contains_Member(t *testing.T) {
	mockWishlists := new(MockWishlistRepository)
	mockHouses := new(MockHouseRepository)
	svc := NewWishlistService(mockWishlists, mockHouses)

	mockWishlists.On("FindByCustomer", mock.Anything, uint(1)).Return(&model.Wishlist{
		CustomerID: 1,
		HouseIDs:   []uint{5},
	}, nil)

	contains, err := svc.Contains(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.True(t, contains)
}
