package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"domus/internal/cache"
	apperrors "domus/internal/errors"
	"domus/internal/model"
	"domus/internal/repository"
)

const (
	houseCacheTTL   = 5 * time.Minute
	defaultPageSize = 10
	maxPageSize     = 100
)

// ImageRelocator is the slice of the image store the house service needs.
type ImageRelocator interface {
	Relocate(paths []string, houseID uint) ([]string, bool, error)
	RemoveHouseDir(houseID uint) error
}

// HousePage is one page of listing results.
type HousePage struct {
	Items      []model.House `json:"items"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalCount int64         `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
}

// HouseService handles listing operations.
type HouseService interface {
	List(ctx context.Context, filter repository.HouseFilter, page, limit int) (*HousePage, error)
	Get(ctx context.Context, id uint) (*model.House, error)
	Create(ctx context.Context, house *model.House) (*model.House, error)
	Update(ctx context.Context, id uint, house *model.House) (*model.House, error)
	Delete(ctx context.Context, id uint) (warning string, err error)
}

type houseService struct {
	repo   repository.HouseRepository
	images ImageRelocator
	cache  *cache.Client
}

// NewHouseService creates a new house service.
func NewHouseService(repo repository.HouseRepository, images ImageRelocator, cache *cache.Client) HouseService {
	return &houseService{
		repo:   repo,
		images: images,
		cache:  cache,
	}
}

func (s *houseService) cacheKey(id uint) string {
	return fmt.Sprintf("house:%d", id)
}

// List returns a filtered, paginated page, newest first. The page number is
// clamped to at least 1 and the page size defaults to 10.
func (s *houseService) List(ctx context.Context, filter repository.HouseFilter, page, limit int) (*HousePage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	if items == nil {
		items = []model.House{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &HousePage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// Get retrieves a listing by ID with read-through caching.
func (s *houseService) Get(ctx context.Context, id uint) (*model.House, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.House
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	house, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(house); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, houseCacheTTL)
	}
	return house, nil
}

// Create validates mandatory fields, inserts the record and then relocates
// any provisional image paths into the listing-scoped directory. The two
// steps cannot be atomic because the id only exists after the insert; a
// relocation failure leaves the record with provisional paths and is only
// logged.
func (s *houseService) Create(ctx context.Context, house *model.House) (*model.House, error) {
	if err := validateHouse(house); err != nil {
		return nil, err
	}
	if house.Status == "" {
		house.Status = model.StatusAvailable
	}

	if err := s.repo.Create(ctx, house); err != nil {
		return nil, fmt.Errorf("create house: %w", err)
	}

	final, moved, err := s.images.Relocate(house.Images, house.ID)
	if err != nil {
		log.Printf("house %d: image relocation incomplete: %v", house.ID, err)
		return house, nil
	}
	if moved {
		house.Images = final
		if err := s.repo.Update(ctx, house); err != nil {
			log.Printf("house %d: failed to persist relocated image paths: %v", house.ID, err)
		}
	}
	return house, nil
}

// Update replaces the mutable fields of a listing.
func (s *houseService) Update(ctx context.Context, id uint, house *model.House) (*model.House, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseNotFound
		}
		return nil, err
	}

	if err := validateHouse(house); err != nil {
		return nil, err
	}
	if house.Status == "" {
		house.Status = model.StatusAvailable
	}

	house.ID = existing.ID
	house.CreatedAt = existing.CreatedAt

	final, _, err := s.images.Relocate(house.Images, house.ID)
	if err != nil {
		log.Printf("house %d: image relocation incomplete: %v", house.ID, err)
	} else {
		house.Images = final
	}

	if err := s.repo.Update(ctx, house); err != nil {
		return nil, fmt.Errorf("update house: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return house, nil
}

// Delete removes the record and then the image directory. The directory
// removal is best-effort: a failure is returned as a warning alongside a
// successful delete.
func (s *houseService) Delete(ctx context.Context, id uint) (string, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrHouseNotFound
		}
		return "", fmt.Errorf("delete house: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	if err := s.images.RemoveHouseDir(id); err != nil {
		log.Printf("house %d: image directory not removed: %v", id, err)
		return fmt.Sprintf("listing deleted but image cleanup failed: %v", err), nil
	}
	return "", nil
}

func validateHouse(h *model.House) error {
	switch {
	case h.Title == "":
		return apperrors.NewValidationError("title", "title is required")
	case h.Price <= 0:
		return apperrors.NewValidationError("price", "price is required and must be positive")
	case h.Address == "":
		return apperrors.NewValidationError("address", "address is required")
	case h.Description == "":
		return apperrors.NewValidationError("description", "description is required")
	case h.Bedrooms <= 0:
		return apperrors.NewValidationError("bedrooms", "bedrooms is required and must be positive")
	case h.Bathrooms <= 0:
		return apperrors.NewValidationError("bathrooms", "bathrooms is required and must be positive")
	case h.Area <= 0:
		return apperrors.NewValidationError("area", "area is required and must be positive")
	}
	switch h.Status {
	case "", model.StatusAvailable, model.StatusSold, model.StatusReserved:
	default:
		return apperrors.NewValidationError("status", "status must be available, sold or reserved")
	}
	return nil
}
