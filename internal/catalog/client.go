package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoMatch means the catalog answered but knows nothing about the barcode.
var ErrNoMatch = errors.New("no product match")

// Client queries the Open Food Facts product-by-barcode endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type lookupResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Categories  string `json:"categories"`
		ImageURL    string `json:"image_url"`
	} `json:"product"`
}

// Lookup fetches product metadata for a barcode. Any transport failure,
// non-2xx status, malformed body, or negative catalog answer comes back as an
// error; the resolver turns all of them into the fallback.
func (c *Client) Lookup(ctx context.Context, barcode string) (ProductInfo, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ProductInfo{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ProductInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ProductInfo{}, fmt.Errorf("catalog status %d", resp.StatusCode)
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ProductInfo{}, fmt.Errorf("decoding catalog response: %w", err)
	}
	if parsed.Status != 1 {
		return ProductInfo{}, ErrNoMatch
	}

	p := parsed.Product
	info := ProductInfo{
		Name:     p.ProductName,
		Brand:    p.Brands,
		Category: p.Categories,
		ImageURL: p.ImageURL,
		IsFood:   isFoodCategory(p.Categories),
	}
	if info.Name == "" {
		info.Name = "Unknown Product"
	}
	if info.Brand == "" {
		info.Brand = "Unknown Brand"
	}
	if info.Category == "" {
		info.Category = "General"
	}
	return info, nil
}
