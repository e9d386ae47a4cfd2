package service

import (
	"context"
	"sort"
	"time"

	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"github.com/scanshelf/scanshelf-backend/internal/repository"
)

const (
	UrgencyCritical = "critical"
	UrgencyWarning  = "warning"
)

// Notification is a derived, ephemeral view over the item set; it is never
// stored and is recomputed from scratch on every read.
type Notification struct {
	ItemID     uint64
	Name       string
	Brand      string
	ExpiryDate string
	DaysUntil  int
	Urgency    string
}

type NotificationService interface {
	List(ctx context.Context) ([]Notification, error)
}

type notificationService struct {
	repo repository.ItemRepository
	now  func() time.Time
}

func NewNotificationService(repo repository.ItemRepository) NotificationService {
	return &notificationService{repo: repo, now: time.Now}
}

func (s *notificationService) List(ctx context.Context) ([]Notification, error) {
	items, err := s.repo.ListWithExpiry(ctx)
	if err != nil {
		return nil, err
	}
	return Compute(items, s.now()), nil
}

// Compute derives the expiry alert feed from an item set. Only items expiring
// within the next week, today included, appear; items already expired are
// excluded here and surface through the inventory listing's classification
// instead. The result is ordered soonest expiry first. Compute has no side
// effects: the same items and the same today always produce the same feed.
func Compute(items []model.Item, today time.Time) []Notification {
	notifications := make([]Notification, 0)
	for _, item := range items {
		if item.ExpiryDate == nil || *item.ExpiryDate == "" {
			continue
		}
		expiryDate, err := expiry.ParseDate(*item.ExpiryDate)
		if err != nil {
			continue
		}
		days := expiry.DaysUntil(expiryDate, today)
		if !expiry.InNotifyWindow(days) {
			continue
		}
		urgency := UrgencyWarning
		if expiry.Critical(days) {
			urgency = UrgencyCritical
		}
		notifications = append(notifications, Notification{
			ItemID:     item.ID,
			Name:       item.Name,
			Brand:      item.Brand,
			ExpiryDate: *item.ExpiryDate,
			DaysUntil:  days,
			Urgency:    urgency,
		})
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].ExpiryDate < notifications[j].ExpiryDate
	})
	return notifications
}
