package service

import (
	"context"
	"time"

	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
)

// fakeItemRepo is a slice-backed ItemRepository for service tests.
type fakeItemRepo struct {
	items  []model.Item
	nextID uint64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{nextID: 1}
}

func (r *fakeItemRepo) Create(_ context.Context, item *model.Item) error {
	item.ID = r.nextID
	r.nextID++
	if item.ScanDate == "" {
		item.ScanDate = time.Now().Format(expiry.DateLayout)
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeItemRepo) ListAll(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeItemRepo) ListWithExpiry(_ context.Context) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.items {
		if item.ExpiryDate == nil || *item.ExpiryDate == "" {
			continue
		}
		if _, err := expiry.ParseDate(*item.ExpiryDate); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uint64) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}
