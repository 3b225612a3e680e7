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

// MediaHandler handles media upload and feed HTTP requests
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
	placeRepository repositories.PlaceRepository
	activityService services.ActivityService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(
	mediaRepo repositories.MediaRepository,
	placeRepo repositories.PlaceRepository,
	activityService services.ActivityService,
) *MediaHandler {
	return &MediaHandler{
		mediaRepository: mediaRepo,
		placeRepository: placeRepo,
		activityService: activityService,
	}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/feed/upload", h.Upload)
	g.GET("/feed/media", h.GetFeed)
	g.GET("/feed/media/my", h.GetOwnMedia)
	g.GET("/feed/media/:id", h.GetMedia)
	g.PUT("/feed/media/:id/update", h.UpdateMedia)
	g.DELETE("/feed/media/:id/delete", h.DeleteMedia)
}

// Upload registers uploaded media. File bytes are stored externally; this
// records the metadata and emits the uploader's own-history activity.
func (h *MediaHandler) Upload(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.PlaceID != 0 {
		if _, err := h.placeRepository.GetByID(req.PlaceID); err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Place not found")
		}
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	media := &models.Media{
		Title:        req.Title,
		Description:  req.Description,
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		MediaType:    req.MediaType,
		PlaceID:      req.PlaceID,
		UploadedByID: currentUserID,
		IsPublic:     isPublic,
	}
	if err := h.mediaRepository.Create(c.Request().Context(), media); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Uploads land in the uploader's own ledger (actor == recipient)
	ref := &models.ContentRef{ContentType: models.ContentTypeMedia, ObjectID: media.ID.Hex()}
	if _, err := h.activityService.Record(currentUserID, currentUserID, models.ActivityVideoUpload, ref, nil); err != nil {
		log.Printf("failed to record upload activity for user %d: %v", currentUserID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Media uploaded successfully",
		"media":   media,
	})
}

// GetFeed returns the public media feed, newest first, with optional type
// and uploader filters.
func (h *MediaHandler) GetFeed(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	mediaType := c.QueryParam("type")
	if mediaType != models.MediaTypePhoto && mediaType != models.MediaTypeVideo {
		mediaType = ""
	}
	var uploadedByID uint
	if v := c.QueryParam("user_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			uploadedByID = uint(id)
		}
	}

	skip := int64((page - 1) * limit)
	media, err := h.mediaRepository.GetPublic(c.Request().Context(), mediaType, uploadedByID, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, media)
}

// GetOwnMedia returns the authenticated user's media, public or not
func (h *MediaHandler) GetOwnMedia(c echo.Context) error {
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

	skip := int64((page - 1) * limit)
	media, err := h.mediaRepository.GetByUploader(c.Request().Context(), currentUserID, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, media)
}

// GetMedia returns one media document when it is public or owned by the caller
func (h *MediaHandler) GetMedia(c echo.Context) error {
	media, err := h.mediaRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}

	if !media.IsPublic && media.UploadedByID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}
	return c.JSON(http.StatusOK, media)
}

// UpdateMedia updates title, description or visibility; owner only
func (h *MediaHandler) UpdateMedia(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	media, err := h.mediaRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}
	if media.UploadedByID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this media")
	}

	if req.Title != nil {
		media.Title = *req.Title
	}
	if req.Description != nil {
		media.Description = *req.Description
	}
	if req.IsPublic != nil {
		media.IsPublic = *req.IsPublic
	}

	if err := h.mediaRepository.Update(c.Request().Context(), media); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Media updated successfully",
		"media":   media,
	})
}

// DeleteMedia soft-deletes media; owner only
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.mediaRepository.SoftDelete(c.Request().Context(), c.Param("id"), currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Media deleted successfully"})
}
