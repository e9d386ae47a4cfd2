package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/scanshelf/scanshelf-backend/internal/barcode"
	"github.com/scanshelf/scanshelf-backend/internal/catalog"
)

// ProductResolver stages a scan: it maps a barcode onto product metadata
// without persisting anything.
type ProductResolver interface {
	Resolve(ctx context.Context, barcode string) catalog.Resolution
}

// ImageDecoder extracts at most one barcode from a raster image.
type ImageDecoder interface {
	Decode(r io.Reader) (barcode.DecodeResult, error)
}

type ScanHandler struct {
	resolver ProductResolver
	decoder  ImageDecoder
}

func NewScanHandler(resolver ProductResolver, decoder ImageDecoder) *ScanHandler {
	return &ScanHandler{resolver: resolver, decoder: decoder}
}

type ScanRequest struct {
	Barcode string `json:"barcode"`
}

type ProductResponse struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsFood   bool   `json:"isFood"`
}

type ScanResponse struct {
	Barcode string          `json:"barcode"`
	Product ProductResponse `json:"product"`
	// Source is "catalog" for a real match and "fallback" when the lookup
	// degraded to a placeholder for manual entry.
	Source string `json:"source"`
}

type DecodeImageResponse struct {
	Found   bool   `json:"found"`
	Barcode string `json:"barcode,omitempty"`
	Format  string `json:"format,omitempty"`
}

// Lookup resolves a barcode to product metadata. It always answers 200: an
// unknown barcode yields the fallback product, never an error.
func (h *ScanHandler) Lookup(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	code := strings.TrimSpace(req.Barcode)
	if code == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "barcode is required"))
	}
	res := h.resolver.Resolve(c.Request().Context(), code)
	return c.JSON(http.StatusOK, ScanResponse{
		Barcode: code,
		Product: ProductResponse{
			Name:     res.Product.Name,
			Brand:    res.Product.Brand,
			Category: res.Product.Category,
			ImageURL: res.Product.ImageURL,
			IsFood:   res.Product.IsFood,
		},
		Source: string(res.Source),
	})
}

// DecodeImage scans an uploaded image for a barcode. An image without a
// recognizable barcode is a normal 200 with found=false.
func (h *ScanHandler) DecodeImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "image file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "failed to read image"))
	}
	defer file.Close()

	result, err := h.decoder.Decode(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unsupported or corrupt image"))
	}
	return c.JSON(http.StatusOK, DecodeImageResponse{
		Found:   result.Found,
		Barcode: result.Code,
		Format:  result.Format,
	})
}
