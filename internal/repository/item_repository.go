package repository

import (
	"context"
	"errors"
	"time"

	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	ListAll(ctx context.Context) ([]model.Item, error)
	ListWithExpiry(ctx context.Context) ([]model.Item, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

var ErrDBNotReady = errors.New("database not initialized")

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	if item.ScanDate == "" {
		item.ScanDate = time.Now().Format(expiry.DateLayout)
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// ListAll returns every item, most recent scan first. Items scanned on the
// same day come back in reverse insertion order, matching id order.
func (r *itemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Order("scan_date DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListWithExpiry returns items that track an expiry date, soonest first.
// Rows whose stored date does not parse are skipped; one bad record must not
// block the rest of the listing.
func (r *itemRepository) ListWithExpiry(ctx context.Context) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date != ''").
		Order("expiry_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	valid := items[:0]
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		if _, err := expiry.ParseDate(*item.ExpiryDate); err != nil {
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// Delete removes the item with the given id. Deleting an id that does not
// exist is a no-op.
func (r *itemRepository) Delete(ctx context.Context, id uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Delete(&model.Item{}, id).Error
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
