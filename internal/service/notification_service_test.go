package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
)

var today = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func itemExpiring(id uint64, name string, daysFromToday int) model.Item {
	d := today.AddDate(0, 0, daysFromToday).Format(expiry.DateLayout)
	return model.Item{ID: id, Name: name, Brand: "Brand", ExpiryDate: &d}
}

func TestComputeWindowBoundaries(t *testing.T) {
	tests := []struct {
		name string
		days int
		want bool
	}{
		{"expired yesterday excluded", -1, false},
		{"expiring today included", 0, true},
		{"day seven included", 7, true},
		{"day eight excluded", 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []model.Item{itemExpiring(1, "x", tt.days)}
			got := Compute(items, today)
			if (len(got) == 1) != tt.want {
				t.Fatalf("days=%d included=%v want=%v", tt.days, len(got) == 1, tt.want)
			}
			if tt.want && got[0].DaysUntil != tt.days {
				t.Fatalf("daysUntil=%d want=%d", got[0].DaysUntil, tt.days)
			}
		})
	}
}

func TestComputeUrgencyBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, UrgencyCritical},
		{2, UrgencyCritical},
		{3, UrgencyWarning},
		{7, UrgencyWarning},
	}
	for _, tt := range tests {
		got := Compute([]model.Item{itemExpiring(1, "x", tt.days)}, today)
		if len(got) != 1 || got[0].Urgency != tt.want {
			t.Errorf("days=%d got=%+v want urgency=%s", tt.days, got, tt.want)
		}
	}
}

func TestComputeOrdersByExpiryAscending(t *testing.T) {
	items := []model.Item{
		itemExpiring(1, "later", 6),
		itemExpiring(2, "soonest", 1),
		itemExpiring(3, "middle", 4),
	}
	got := Compute(items, today)
	var names []string
	for _, n := range got {
		names = append(names, n.Name)
	}
	want := []string{"soonest", "middle", "later"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order=%v want=%v", names, want)
	}
}

func TestComputeSkipsUntrackedAndMalformed(t *testing.T) {
	bad := "not-a-date"
	empty := ""
	items := []model.Item{
		{ID: 1, Name: "no expiry"},
		{ID: 2, Name: "empty expiry", ExpiryDate: &empty},
		{ID: 3, Name: "malformed", ExpiryDate: &bad},
		itemExpiring(4, "valid", 2),
	}
	got := Compute(items, today)
	if len(got) != 1 || got[0].ItemID != 4 {
		t.Fatalf("got=%+v want only item 4", got)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	items := []model.Item{itemExpiring(1, "a", 1), itemExpiring(2, "b", 5)}
	first := Compute(items, today)
	second := Compute(items, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different feeds")
	}
}

func TestListComputesFromStore(t *testing.T) {
	repo := newFakeItemRepo()
	svc := &notificationService{repo: repo, now: func() time.Time { return today }}

	item := itemExpiring(0, "Milk", 2)
	if err := repo.Create(context.Background(), &item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d want=1", len(got))
	}
	n := got[0]
	if n.Urgency != UrgencyCritical || n.DaysUntil != 2 || n.ItemID != item.ID {
		t.Fatalf("unexpected notification %+v", n)
	}
}

func TestListExcludesExpiredItems(t *testing.T) {
	repo := newFakeItemRepo()
	svc := &notificationService{repo: repo, now: func() time.Time { return today }}

	item := itemExpiring(0, "old yogurt", -1)
	if err := repo.Create(context.Background(), &item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expired item leaked into feed: %+v", got)
	}

	// The same item still classifies as expired in the inventory view.
	d, _ := expiry.ParseDate(*item.ExpiryDate)
	if s := expiry.StatusFor(expiry.DaysUntil(d, today)); s != expiry.StatusExpired {
		t.Fatalf("status=%s want=%s", s, expiry.StatusExpired)
	}
}
