package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ActivityHandler handles activity feed HTTP requests
type ActivityHandler struct {
	activityService services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RegisterActivityRoutes registers activity feed routes
func (h *ActivityHandler) RegisterActivityRoutes(g *echo.Group) {
	g.GET("/social/activities", h.GetFeed)
	g.GET("/social/activities/stats", h.GetStats)
	g.POST("/social/activities/mark-read", h.MarkRead)
}

// GetFeed returns the authenticated user's activity feed, newest first,
// optionally filtered by type and read state.
func (h *ActivityHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	var isRead *bool
	if v := c.QueryParam("is_read"); v != "" {
		read := v == "true"
		isRead = &read
	}

	entries, total, err := h.activityService.Feed(c.Request().Context(),
		currentUserID, c.QueryParam("type"), isRead, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"activities": entries,
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      total,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}

// GetStats returns aggregate activity statistics for the authenticated user
func (h *ActivityHandler) GetStats(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	stats, err := h.activityService.Stats(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// MarkRead marks the listed activities read; an empty list marks all read
func (h *ActivityHandler) MarkRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.activityService.MarkRead(currentUserID, req.ActivityIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Activities marked as read"})
}
