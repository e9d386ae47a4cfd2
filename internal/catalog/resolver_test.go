package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) (*Resolver, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 2*time.Second, nil)
	return NewResolver(client, NewCache(time.Hour)), &calls
}

func TestResolvePositiveMatch(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/7622210449283.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":1,"product":{"product_name":"Milka Alpine Milk","brands":"Milka","categories":"Snacks, Sweet snacks, Foods","image_url":"https://img.example/milka.jpg"}}`))
	})

	res := resolver.Resolve(context.Background(), "7622210449283")
	if res.Source != SourceCatalog {
		t.Fatalf("source=%s want=%s", res.Source, SourceCatalog)
	}
	if res.Product.Name != "Milka Alpine Milk" || res.Product.Brand != "Milka" {
		t.Fatalf("unexpected product %+v", res.Product)
	}
	if !res.Product.IsFood {
		t.Fatal("category containing 'food' should mark product as food")
	}
	if res.Product.ImageURL != "https://img.example/milka.jpg" {
		t.Fatalf("imageURL=%q", res.Product.ImageURL)
	}
}

func TestResolveFieldFallbacks(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{}}`))
	})

	res := resolver.Resolve(context.Background(), "123")
	if res.Source != SourceCatalog {
		t.Fatalf("source=%s", res.Source)
	}
	p := res.Product
	if p.Name != "Unknown Product" || p.Brand != "Unknown Brand" || p.Category != "General" {
		t.Fatalf("unexpected fallback fields %+v", p)
	}
	if p.IsFood {
		t.Fatal("empty category must not be food")
	}
}

func TestResolveBeverageIsFood(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"product_name":"Coca-Cola","categories":"Carbonated Beverages"}}`))
	})
	if res := resolver.Resolve(context.Background(), "5449000000996"); !res.Product.IsFood {
		t.Fatal("beverage category should mark product as food")
	}
}

func TestResolveDegradesToFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"negative match", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, _ := newTestResolver(t, tt.handler)
			res := resolver.Resolve(context.Background(), "999")
			if res.Source != SourceFallback {
				t.Fatalf("source=%s want=%s", res.Source, SourceFallback)
			}
			p := res.Product
			if p.Name != "Product 999" || p.Brand != "Unknown" || p.Category != "General Item" {
				t.Fatalf("unexpected fallback %+v", p)
			}
			if p.IsFood || p.ImageURL != "" {
				t.Fatalf("fallback must be non-food without image: %+v", p)
			}
		})
	}
}

func TestResolveTimeoutDegradesToFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond, nil)
	resolver := NewResolver(client, NewCache(time.Hour))
	res := resolver.Resolve(context.Background(), "42")
	if res.Source != SourceFallback {
		t.Fatalf("timed-out lookup should degrade, got source=%s", res.Source)
	}
}

func TestResolveCachesWithinTTL(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"product_name":"Nutella","brands":"Ferrero","categories":"Spreads, Foods"}}`))
	})

	first := resolver.Resolve(context.Background(), "3017620422003")
	second := resolver.Resolve(context.Background(), "3017620422003")
	if got := atomic.LoadInt32(calls); got != 1 {
		t.Fatalf("remote calls=%d want=1", got)
	}
	if first != second {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestResolveCachesFallback(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	first := resolver.Resolve(context.Background(), "0000")
	second := resolver.Resolve(context.Background(), "0000")
	if got := atomic.LoadInt32(calls); got != 1 {
		t.Fatalf("fallback should be cached, remote calls=%d", got)
	}
	if first != second || second.Source != SourceFallback {
		t.Fatalf("cached fallback differs: %+v vs %+v", first, second)
	}
}

func TestResolveRawBarcodeIsCacheKey(t *testing.T) {
	resolver, calls := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"product_name":"X"}}`))
	})

	resolver.Resolve(context.Background(), "0123")
	resolver.Resolve(context.Background(), "123")
	if got := atomic.LoadInt32(calls); got != 2 {
		t.Fatalf("differently formatted barcodes must be distinct keys, calls=%d", got)
	}
}
