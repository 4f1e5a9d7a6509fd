package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "domus/internal/errors"
	"domus/internal/model"
	"domus/internal/repository"
)

// WishlistService maintains the per-customer set of favorited listings.
type WishlistService interface {
	Get(ctx context.Context, customerID uint) ([]model.House, error)
	Add(ctx context.Context, customerID, houseID uint) ([]model.House, error)
	Remove(ctx context.Context, customerID, houseID uint) ([]model.House, error)
	Clear(ctx context.Context, customerID uint) error
	Contains(ctx context.Context, customerID, houseID uint) (bool, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	houseRepo    repository.HouseRepository
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, houseRepo repository.HouseRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		houseRepo:    houseRepo,
	}
}

// Get resolves the wishlist to house records in stored order. A missing
// wishlist is an empty list, not an error; houses deleted since being added
// are skipped.
func (s *wishlistService) Get(ctx context.Context, customerID uint) ([]model.House, error) {
	wishlist, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.House{}, nil
		}
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	return s.resolve(ctx, wishlist.HouseIDs)
}

// Add appends a house to the wishlist, creating it lazily on first use.
// Duplicate adds are rejected, not deduplicated.
func (s *wishlistService) Add(ctx context.Context, customerID, houseID uint) ([]model.House, error) {
	if _, err := s.houseRepo.FindByID(ctx, houseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseNotFound
		}
		return nil, fmt.Errorf("check house: %w", err)
	}

	wishlist, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wishlist = &model.Wishlist{CustomerID: customerID, HouseIDs: []uint{houseID}}
		err = s.wishlistRepo.Create(ctx, wishlist)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race; fall through to the append path.
			wishlist, err = s.wishlistRepo.FindByCustomer(ctx, customerID)
			if err != nil {
				return nil, fmt.Errorf("reload wishlist: %w", err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("create wishlist: %w", err)
		} else {
			return s.resolve(ctx, wishlist.HouseIDs)
		}
	} else if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	if wishlist.Contains(houseID) {
		return nil, apperrors.ErrAlreadyInWishlist
	}
	wishlist.HouseIDs = append(wishlist.HouseIDs, houseID)
	if err := s.wishlistRepo.Update(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}
	return s.resolve(ctx, wishlist.HouseIDs)
}

// Remove is idempotent: removing an absent house returns the unchanged list.
func (s *wishlistService) Remove(ctx context.Context, customerID, houseID uint) ([]model.House, error) {
	wishlist, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.House{}, nil
		}
		return nil, fmt.Errorf("load wishlist: %w", err)
	}

	if wishlist.Contains(houseID) {
		filtered := make([]uint, 0, len(wishlist.HouseIDs))
		for _, id := range wishlist.HouseIDs {
			if id != houseID {
				filtered = append(filtered, id)
			}
		}
		wishlist.HouseIDs = filtered
		if err := s.wishlistRepo.Update(ctx, wishlist); err != nil {
			return nil, fmt.Errorf("save wishlist: %w", err)
		}
	}
	return s.resolve(ctx, wishlist.HouseIDs)
}

// Clear deletes the wishlist document entirely.
func (s *wishlistService) Clear(ctx context.Context, customerID uint) error {
	return s.wishlistRepo.DeleteByCustomer(ctx, customerID)
}

// Contains never fails on a missing wishlist.
func (s *wishlistService) Contains(ctx context.Context, customerID, houseID uint) (bool, error) {
	wishlist, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load wishlist: %w", err)
	}
	return wishlist.Contains(houseID), nil
}

// resolve fetches houses for ids, preserving wishlist order.
func (s *wishlistService) resolve(ctx context.Context, ids []uint) ([]model.House, error) {
	houses, err := s.houseRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve wishlist houses: %w", err)
	}
	byID := make(map[uint]model.House, len(houses))
	for _, h := range houses {
		byID[h.ID] = h
	}
	ordered := make([]model.House, 0, len(ids))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered, nil
}
