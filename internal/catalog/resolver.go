package catalog

import (
	"context"
	"log"
)

// Resolver maps a barcode to product metadata, answering from the cache when
// it can and degrading to a placeholder when the catalog cannot help.
type Resolver struct {
	client *Client
	cache  *Cache
}

func NewResolver(client *Client, cache *Cache) *Resolver {
	return &Resolver{client: client, cache: cache}
}

// Resolve returns a Resolution for barcode. It never fails: a fresh cache hit
// is returned without touching the network; otherwise one lookup is attempted
// and any failure, of any kind, degrades to the fallback placeholder. The
// fallback is cached like a positive answer so repeated scans of an unknown
// barcode stay quiet for a TTL.
//
// The cache key is the raw barcode string; two differently formatted but
// logically identical barcodes are distinct keys.
func (r *Resolver) Resolve(ctx context.Context, barcode string) Resolution {
	if res, ok := r.cache.Get(barcode); ok {
		return res
	}

	info, err := r.client.Lookup(ctx, barcode)
	if err != nil {
		log.Printf("catalog lookup for %q degraded to fallback: %v", barcode, err)
		res := Resolution{Product: fallbackProduct(barcode), Source: SourceFallback}
		r.cache.Set(barcode, res)
		return res
	}

	res := Resolution{Product: info, Source: SourceCatalog}
	r.cache.Set(barcode, res)
	return res
}
