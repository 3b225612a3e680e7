package handlers

import (
	"net/http"
	"strconv"

	"github.com/7aib/spots-backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/social/follow/:id", h.FollowUser)
	g.POST("/social/unfollow/:id", h.UnfollowUser)
	g.GET("/social/following", h.ListFollowing)
	g.GET("/social/followers", h.ListFollowers)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	created, err := h.followService.Follow(currentUserID, uint(targetID))
	if err != nil {
		return serviceHTTPError(err)
	}

	if created {
		return c.JSON(http.StatusCreated, echo.Map{"message": "User followed successfully"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Already following this user"})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.followService.Unfollow(currentUserID, uint(targetID)); err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User unfollowed successfully"})
}

// ListFollowing lists the users the authenticated user follows
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	follows, err := h.followService.ListFollowing(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, follows)
}

// ListFollowers lists the users following the authenticated user
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	follows, err := h.followService.ListFollowers(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, follows)
}
