package catalog

import "strings"

// ProductInfo is the metadata a barcode resolves to. It is not persisted
// directly; the caller folds it into an item on confirm.
type ProductInfo struct {
	Name     string
	Brand    string
	Category string
	ImageURL string
	// IsFood gates whether an expiry date is mandatory before the product
	// may be saved.
	IsFood bool
}

// Source tells a caller whether a resolution came from the catalog or is the
// degraded placeholder.
type Source string

const (
	SourceCatalog  Source = "catalog"
	SourceFallback Source = "fallback"
)

// Resolution is the outcome of resolving a barcode. Resolve never fails, so
// there is no error variant; degraded answers carry SourceFallback.
type Resolution struct {
	Product ProductInfo
	Source  Source
}

// isFoodCategory reports whether a raw catalog category string describes a
// food or beverage product.
func isFoodCategory(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "food") || strings.Contains(c, "beverage")
}

// fallbackProduct is the placeholder returned when the catalog has no answer,
// letting the flow continue with manual data entry.
func fallbackProduct(barcode string) ProductInfo {
	return ProductInfo{
		Name:     "Product " + barcode,
		Brand:    "Unknown",
		Category: "General Item",
		ImageURL: "",
		IsFood:   false,
	}
}
