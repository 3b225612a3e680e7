package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"github.com/7aib/spots-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PlaceHandler handles place HTTP requests
type PlaceHandler struct {
	placeRepository repositories.PlaceRepository
	activityService services.ActivityService
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(placeRepo repositories.PlaceRepository, activityService services.ActivityService) *PlaceHandler {
	return &PlaceHandler{placeRepository: placeRepo, activityService: activityService}
}

// RegisterPlaceRoutes registers place-related routes
func (h *PlaceHandler) RegisterPlaceRoutes(g *echo.Group) {
	g.GET("/feed/places", h.ListPlaces)
	g.POST("/feed/places", h.CreatePlace)
}

// ListPlaces returns all places ordered by name
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places, err := h.placeRepository.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, places)
}

// CreatePlace creates a place and records the creator's own-history activity
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	place := &models.Place{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CityID:      req.CityID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CreatedByID: currentUserID,
	}
	if err := h.placeRepository.Create(place); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ref := &models.ContentRef{
		ContentType: models.ContentTypePlace,
		ObjectID:    strconv.FormatUint(uint64(place.ID), 10),
	}
	if _, err := h.activityService.Record(currentUserID, currentUserID, models.ActivityPlaceCreated, ref, nil); err != nil {
		log.Printf("failed to record place activity for user %d: %v", currentUserID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Place created successfully",
		"place":   place,
	})
}
