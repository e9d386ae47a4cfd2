package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"github.com/scanshelf/scanshelf-backend/internal/repository"
)

// ErrMissingExpiryForFood is returned when a food item is saved without an
// expiry date. It is user-correctable: supply a date and retry.
var ErrMissingExpiryForFood = errors.New("expiry date is required for food items")

// SaveInput carries a confirmed scan into the store. The product fields come
// from the staged resolution, possibly edited by the user before confirming.
type SaveInput struct {
	Barcode    string
	Name       string
	Brand      string
	Category   string
	ImageURL   string
	IsFood     bool
	ExpiryDate *string
}

type InventoryService interface {
	Save(ctx context.Context, input SaveInput) (*model.Item, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	ListExpiring(ctx context.Context) ([]model.Item, error)
	Remove(ctx context.Context, id uint64) error
	Dashboard(ctx context.Context) (totalItems int64, expiringSoon int, err error)
}

type inventoryService struct {
	repo     repository.ItemRepository
	notifier NotificationService
}

func NewInventoryService(repo repository.ItemRepository, notifier NotificationService) InventoryService {
	return &inventoryService{repo: repo, notifier: notifier}
}

// Save validates a confirmed scan and persists it. Validation failures write
// nothing.
func (s *inventoryService) Save(ctx context.Context, input SaveInput) (*model.Item, error) {
	barcode := strings.TrimSpace(input.Barcode)
	name := strings.TrimSpace(input.Name)
	if barcode == "" {
		return nil, errors.New("barcode is required")
	}
	if name == "" {
		return nil, errors.New("name is required")
	}

	expiryDate := input.ExpiryDate
	if expiryDate != nil && strings.TrimSpace(*expiryDate) == "" {
		expiryDate = nil
	}
	if input.IsFood && expiryDate == nil {
		return nil, ErrMissingExpiryForFood
	}
	if expiryDate != nil {
		if _, err := expiry.ParseDate(*expiryDate); err != nil {
			return nil, fmt.Errorf("invalid expiry date %q: want YYYY-MM-DD", *expiryDate)
		}
	}

	item := &model.Item{
		Barcode:    barcode,
		Name:       name,
		Brand:      input.Brand,
		Category:   input.Category,
		ImageURL:   input.ImageURL,
		ExpiryDate: expiryDate,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) ListAll(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListAll(ctx)
}

func (s *inventoryService) ListExpiring(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListWithExpiry(ctx)
}

// Remove deletes an item. Removing an id that was already deleted, or never
// existed, succeeds and changes nothing.
func (s *inventoryService) Remove(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

func (s *inventoryService) Dashboard(ctx context.Context) (int64, int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	notifications, err := s.notifier.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	return total, len(notifications), nil
}
