package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"github.com/scanshelf/scanshelf-backend/internal/service"
)

type ItemHandler struct {
	svc service.InventoryService
}

func NewItemHandler(svc service.InventoryService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type ItemResponse struct {
	ID         uint64  `json:"id"`
	Barcode    string  `json:"barcode"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Category   string  `json:"category"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	ScanDate   string  `json:"scanDate"`
	// Status is the expiry classification as of the request: expired,
	// critical, warning or safe. Empty when no expiry is tracked.
	Status string `json:"status,omitempty"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

type CreateItemRequest struct {
	Barcode    string  `json:"barcode"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Category   string  `json:"category"`
	ImageURL   string  `json:"imageUrl"`
	IsFood     bool    `json:"isFood"`
	ExpiryDate *string `json:"expiryDate"`
}

type DashboardResponse struct {
	TotalItems   int64 `json:"totalItems"`
	ExpiringSoon int   `json:"expiringSoon"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.Save(c.Request().Context(), service.SaveInput{
		Barcode:    req.Barcode,
		Name:       req.Name,
		Brand:      req.Brand,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		IsFood:     req.IsFood,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingExpiryForFood) {
			return c.JSON(http.StatusUnprocessableEntity, NewErrorResponse("missing_expiry", err.Error()))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toItemResponse(item, time.Now()))
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, toItemListResponse(items))
}

func (h *ItemHandler) ListExpiring(c echo.Context) error {
	items, err := h.svc.ListExpiring(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, toItemListResponse(items))
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete item"))
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ItemHandler) Dashboard(c echo.Context) error {
	total, expiring, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to compute dashboard"))
	}
	return c.JSON(http.StatusOK, DashboardResponse{TotalItems: total, ExpiringSoon: expiring})
}

func toItemListResponse(items []model.Item) ItemListResponse {
	now := time.Now()
	resp := ItemListResponse{
		Items: make([]ItemResponse, 0, len(items)),
		Total: len(items),
	}
	for i := range items {
		resp.Items = append(resp.Items, toItemResponse(&items[i], now))
	}
	return resp
}

func toItemResponse(item *model.Item, now time.Time) ItemResponse {
	resp := ItemResponse{
		ID:         item.ID,
		Barcode:    item.Barcode,
		Name:       item.Name,
		Brand:      item.Brand,
		Category:   item.Category,
		ImageURL:   item.ImageURL,
		ExpiryDate: item.ExpiryDate,
		ScanDate:   item.ScanDate,
	}
	if item.ExpiryDate != nil && *item.ExpiryDate != "" {
		if expiryDate, err := expiry.ParseDate(*item.ExpiryDate); err == nil {
			resp.Status = string(expiry.StatusFor(expiry.DaysUntil(expiryDate, now)))
		}
	}
	return resp
}
