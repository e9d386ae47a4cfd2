package model

// Item is a persisted scan record. Items are immutable once created; the only
// mutation the store supports is deletion.
type Item struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	Barcode    string  `gorm:"size:64;not null"`
	Name       string  `gorm:"size:255;not null"`
	Brand      string  `gorm:"size:255"`
	Category   string  `gorm:"size:255"`
	ImageURL   string  `gorm:"size:512"`
	ExpiryDate *string `gorm:"size:10"` // YYYY-MM-DD, nil when no expiry is tracked
	ScanDate   string  `gorm:"size:10;not null"`
}

func (Item) TableName() string {
	return "items"
}
