package repository

import (
	"context"

	"gorm.io/gorm"

	"domus/internal/model"
)

// HouseFilter narrows the catalog query. Nil fields impose no constraint.
type HouseFilter struct {
	PriceMin      *float64
	PriceMax      *float64
	Bedrooms      *int // exact match
	BedroomsMin   *int // "N+" semantics, at least N
	Floors        *int
	FloorsMin     *int
	WithRepair    *bool
	WithFurniture *bool
}

// HouseRepository defines listing persistence operations.
type HouseRepository interface {
	Create(ctx context.Context, house *model.House) error
	Update(ctx context.Context, house *model.House) error
	FindByID(ctx context.Context, id uint) (*model.House, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.House, error)
	List(ctx context.Context, filter HouseFilter, offset, limit int) ([]model.House, int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository builds a GORM-backed repository.
func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Create(ctx context.Context, house *model.House) error {
	return r.db.WithContext(ctx).Create(house).Error
}

func (r *houseRepository) Update(ctx context.Context, house *model.House) error {
	return r.db.WithContext(ctx).Save(house).Error
}

func (r *houseRepository) FindByID(ctx context.Context, id uint) (*model.House, error) {
	var house model.House
	if err := r.db.WithContext(ctx).First(&house, id).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *houseRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.House, error) {
	if len(ids) == 0 {
		return []model.House{}, nil
	}
	var houses []model.House
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// List returns a filtered page of listings plus the total match count.
// Ordering is newest first; id is the tie-breaker for equal timestamps.
func (r *houseRepository) List(ctx context.Context, filter HouseFilter, offset, limit int) ([]model.House, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.House{})

	if filter.PriceMin != nil {
		q = q.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *filter.Bedrooms)
	}
	if filter.BedroomsMin != nil {
		q = q.Where("bedrooms >= ?", *filter.BedroomsMin)
	}
	if filter.Floors != nil {
		q = q.Where("floors = ?", *filter.Floors)
	}
	if filter.FloorsMin != nil {
		q = q.Where("floors >= ?", *filter.FloorsMin)
	}
	if filter.WithRepair != nil {
		q = q.Where("with_repair = ?", *filter.WithRepair)
	}
	if filter.WithFurniture != nil {
		q = q.Where("with_furniture = ?", *filter.WithFurniture)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var houses []model.House
	err := q.Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&houses).Error
	if err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

func (r *houseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.House{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *houseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.House{}).Count(&count).Error
	return count, err
}
