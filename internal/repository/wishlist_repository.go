package repository

import (
	"context"

	"gorm.io/gorm"

	"domus/internal/model"
)

// WishlistRepository defines wishlist persistence operations.
type WishlistRepository interface {
	FindByCustomer(ctx context.Context, customerID uint) (*model.Wishlist, error)
	Create(ctx context.Context, wishlist *model.Wishlist) error
	Update(ctx context.Context, wishlist *model.Wishlist) error
	DeleteByCustomer(ctx context.Context, customerID uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository builds a GORM-backed repository.
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) FindByCustomer(ctx context.Context, customerID uint) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&wishlist).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// Create inserts a new wishlist. The unique index on customer_id turns a
// concurrent double-create into gorm.ErrDuplicatedKey, which callers resolve
// by re-reading.
func (r *wishlistRepository) Create(ctx context.Context, wishlist *model.Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

func (r *wishlistRepository) Update(ctx context.Context, wishlist *model.Wishlist) error {
	return r.db.WithContext(ctx).Save(wishlist).Error
}

func (r *wishlistRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.Wishlist{}).Error
}
