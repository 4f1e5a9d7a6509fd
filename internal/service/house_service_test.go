package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "domus/internal/errors"
	"domus/internal/model"
	"domus/internal/repository"
)

// MockHouseRepository is a mock implementation of HouseRepository.
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) Create(ctx context.Context, house *model.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseRepository) Update(ctx context.Context, house *model.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseRepository) FindByID(ctx context.Context, id uint) (*model.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.House), args.Error(1)
}

func (m *MockHouseRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.House, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.House), args.Error(1)
}

func (m *MockHouseRepository) List(ctx context.Context, filter repository.HouseFilter, offset, limit int) ([]model.House, int64, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.House), args.Get(1).(int64), args.Error(2)
}

func (m *MockHouseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHouseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockImageRelocator is a mock implementation of ImageRelocator.
type MockImageRelocator struct {
	mock.Mock
}

func (m *MockImageRelocator) Relocate(paths []string, houseID uint) ([]string, bool, error) {
	args := m.Called(paths, houseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *MockImageRelocator) RemoveHouseDir(houseID uint) error {
	args := m.Called(houseID)
	return args.Error(0)
}

func validHouse() *model.House {
	return &model.House{
		Title:       "Brick cottage",
		Price:       185000,
		Address:     "14 Willow Lane",
		Description: "Two-storey brick cottage.",
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        140,
	}
}

func TestHouseService_Create_Validation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*model.House)
		expectedField string
	}{
		{"missing title", func(h *model.House) { h.Title = "" }, "title"},
		{"missing price", func(h *model.House) { h.Price = 0 }, "price"},
		{"missing address", func(h *model.House) { h.Address = "" }, "address"},
		{"missing description", func(h *model.House) { h.Description = "" }, "description"},
		{"missing bedrooms", func(h *model.House) { h.Bedrooms = 0 }, "bedrooms"},
		{"missing bathrooms", func(h *model.House) { h.Bathrooms = 0 }, "bathrooms"},
		{"missing area", func(h *model.House) { h.Area = 0 }, "area"},
		{"bad status", func(h *model.House) { h.Status = "pending" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHouseRepository)
			mockImages := new(MockImageRelocator)
			svc := NewHouseService(mockRepo, mockImages, nil)

			house := validHouse()
			tt.mutate(house)

			created, err := svc.Create(context.Background(), house)

			assert.Nil(t, created)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.expectedField, ve.Field)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestHouseService_Create_RelocatesProvisionalImages(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	house := validHouse()
	house.Images = []string{"/uploads/tmp/a.jpg", "/uploads/tmp/b.jpg"}

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.House")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.House).ID = 7
		}).Return(nil)
	final := []string{"/uploads/houses/7/a.jpg", "/uploads/houses/7/b.jpg"}
	mockImages.On("Relocate", house.Images, uint(7)).Return(final, true, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.House")).Return(nil)

	created, err := svc.Create(context.Background(), house)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, created.Status)
	assert.Equal(t, final, created.Images)
	mockRepo.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}

func TestHouseService_Create_RelocationFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	house := validHouse()
	house.Images = []string{"/uploads/tmp/a.jpg"}

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.House")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.House).ID = 9
		}).Return(nil)
	mockImages.On("Relocate", house.Images, uint(9)).Return(nil, false, assert.AnError)

	created, err := svc.Create(context.Background(), house)

	// The record persists with provisional paths; no rollback.
	assert.NoError(t, err)
	assert.Equal(t, []string{"/uploads/tmp/a.jpg"}, created.Images)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestHouseService_List_PaginationMath(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	filter := repository.HouseFilter{}
	items := make([]model.House, 10)
	mockRepo.On("List", mock.Anything, filter, 0, 10).Return(items, int64(12), nil)

	page, err := svc.List(context.Background(), filter, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page) // clamped to at least 1
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(12), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages) // ceil(12 / 10)
	assert.Len(t, page.Items, 10)
	mockRepo.AssertExpectations(t)
}

func TestHouseService_List_OffsetFromPage(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	filter := repository.HouseFilter{}
	mockRepo.On("List", mock.Anything, filter, 10, 10).Return([]model.House{}, int64(12), nil)

	page, err := svc.List(context.Background(), filter, 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	mockRepo.AssertExpectations(t)
}

func TestHouseService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	house, err := svc.Get(context.Background(), 404)

	assert.Nil(t, house)
	assert.ErrorIs(t, err, apperrors.ErrHouseNotFound)
}

func TestHouseService_Delete_ImageCleanupIsBestEffort(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)
	mockImages.On("RemoveHouseDir", uint(3)).Return(assert.AnError)

	warning, err := svc.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.NotEmpty(t, warning)
	mockRepo.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}

func TestHouseService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockHouseRepository)
	mockImages := new(MockImageRelocator)
	svc := NewHouseService(mockRepo, mockImages, nil)

	mockRepo.On("Delete", mock.Anything, uint(404)).Return(gorm.ErrRecordNotFound)

	_, err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, apperrors.ErrHouseNotFound)
	mockImages.AssertNotCalled(t, "RemoveHouseDir")
}
