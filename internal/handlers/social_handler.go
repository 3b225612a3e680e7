package handlers

import (
	"net/http"
	"strconv"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// SocialHandler handles like, comment and share HTTP requests
type SocialHandler struct {
	socialService services.SocialService
}

// NewSocialHandler creates a new SocialHandler
func NewSocialHandler(socialService services.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// RegisterSocialRoutes registers interaction routes
func (h *SocialHandler) RegisterSocialRoutes(g *echo.Group) {
	g.POST("/social/like", h.ToggleLike)
	g.GET("/social/likes", h.GetLikes)
	g.POST("/social/comment", h.AddComment)
	g.GET("/social/comments", h.ListComments)
	g.GET("/social/comments/:id/replies", h.ListReplies)
	g.PUT("/social/comments/:id", h.EditComment)
	g.DELETE("/social/comments/:id", h.DeleteComment)
	g.POST("/social/share", h.RecordShare)
}

// ToggleLike likes a content entity, or unlikes it when already liked
func (h *SocialHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref := models.ContentRef{ContentType: models.TypeTag(req.ContentType), ObjectID: req.ObjectID}
	liked, err := h.socialService.ToggleLike(c.Request().Context(), currentUserID, ref)
	if err != nil {
		return serviceHTTPError(err)
	}

	if liked {
		return c.JSON(http.StatusCreated, echo.Map{"message": "Liked successfully", "liked": true})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Unliked successfully", "liked": false})
}

// GetLikes lists the likes on a content entity along with the caller's
// like status.
func (h *SocialHandler) GetLikes(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ref := models.ContentRef{
		ContentType: models.TypeTag(c.QueryParam("content_type")),
		ObjectID:    c.QueryParam("object_id"),
	}
	if ref.ContentType == "" || ref.ObjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content_type and object_id are required")
	}

	likes, liked, err := h.socialService.GetLikes(c.Request().Context(), currentUserID, ref)
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"likes":      likes,
		"like_count": len(likes),
		"liked":      liked,
	})
}

// AddComment comments on a content entity
func (h *SocialHandler) AddComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref := models.ContentRef{ContentType: models.TypeTag(req.ContentType), ObjectID: req.ObjectID}
	comment, err := h.socialService.AddComment(c.Request().Context(), currentUserID, ref, req.Text, req.ParentID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Comment added successfully",
		"comment_id": comment.ID,
		"comment":    comment,
	})
}

// ListComments lists the comments on a content entity
func (h *SocialHandler) ListComments(c echo.Context) error {
	ref := models.ContentRef{
		ContentType: models.TypeTag(c.QueryParam("content_type")),
		ObjectID:    c.QueryParam("object_id"),
	}
	if ref.ContentType == "" || ref.ObjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content_type and object_id are required")
	}

	comments, err := h.socialService.ListComments(c.Request().Context(), ref)
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// ListReplies lists the replies to a comment
func (h *SocialHandler) ListReplies(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	replies, err := h.socialService.ListReplies(c.Request().Context(), uint(commentID))
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, replies)
}

// EditComment updates a comment's text
func (h *SocialHandler) EditComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.socialService.EditComment(c.Request().Context(), currentUserID, uint(commentID), req.Text)
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment soft-deletes a comment
func (h *SocialHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.socialService.DeleteComment(c.Request().Context(), currentUserID, uint(commentID)); err != nil {
		return serviceHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordShare records a share of a content entity
func (h *SocialHandler) RecordShare(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref := models.ContentRef{ContentType: models.TypeTag(req.ContentType), ObjectID: req.ObjectID}
	share, err := h.socialService.RecordShare(c.Request().Context(), currentUserID, ref,
		models.SharePlatform(req.Platform), req.Message, false)
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Shared successfully", "share": share})
}
