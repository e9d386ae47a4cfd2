package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scanshelf/scanshelf-backend/internal/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type NotificationResponse struct {
	ItemID     uint64 `json:"itemId"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	ExpiryDate string `json:"expiryDate"`
	DaysUntil  int    `json:"daysUntil"`
	Urgency    string `json:"urgency"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

func (h *NotificationHandler) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to compute notifications"))
	}
	resp := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
		Count:         len(list),
	}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ItemID:     n.ItemID,
			Name:       n.Name,
			Brand:      n.Brand,
			ExpiryDate: n.ExpiryDate,
			DaysUntil:  n.DaysUntil,
			Urgency:    n.Urgency,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
