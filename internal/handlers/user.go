package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	userRepository    repositories.UserRepository
	profileRepository repositories.ProfileRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	shareRepository   repositories.ShareRepository
	followRepository  repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	shareRepo repositories.ShareRepository,
	followRepo repositories.FollowRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:    userRepo,
		profileRepository: profileRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		shareRepository:   shareRepo,
		followRepository:  followRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/accounts/profile", h.GetOwnProfile)
	g.PUT("/accounts/profile/update", h.UpdateProfile)
	g.GET("/profile/:username", h.GetProfileByUsername)
	g.GET("/profile/id/:id", h.GetProfileByUserID)
	g.GET("/users/search", h.SearchUsers)
}

// profileResponse is a profile plus its interaction and follow counts
type profileResponse struct {
	User        models.UserCompact `json:"user"`
	Profile     models.UserProfile `json:"profile"`
	Likes       int64              `json:"like_count"`
	Comment     int64              `json:"comment_count"`
	Shares      int64              `json:"share_count"`
	Followers   int64              `json:"follower_count"`
	Following   int64              `json:"following_count"`
	IsFollowing bool               `json:"is_following"`
}

// buildProfileResponse assembles a profile view; viewerID drives the
// is_following flag and may be zero for anonymous contexts.
func (h *UserHandler) buildProfileResponse(user *models.User, viewerID uint) (*profileResponse, error) {
	profile, err := h.profileRepository.GetOrCreateByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	// Interaction counts against the profile as a content target
	ref := models.ContentRef{
		ContentType: models.ContentTypeProfile,
		ObjectID:    strconv.FormatUint(uint64(profile.ID), 10),
	}
	likes, err := h.likeRepository.CountForContent(ref)
	if err != nil {
		return nil, err
	}
	comments, err := h.commentRepository.CountForContent(ref)
	if err != nil {
		return nil, err
	}
	shares, err := h.shareRepository.CountForContent(ref)
	if err != nil {
		return nil, err
	}

	followers, err := h.followRepository.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := h.followRepository.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}
	isFollowing := false
	if viewerID != 0 && viewerID != user.ID {
		if isFollowing, err = h.followRepository.IsFollowing(viewerID, user.ID); err != nil {
			return nil, err
		}
	}

	return &profileResponse{
		User:        user.ToCompact(profile.AvatarURL),
		Profile:     *profile,
		Likes:       likes,
		Comment:     comments,
		Shares:      shares,
		Followers:   followers,
		Following:   following,
		IsFollowing: isFollowing,
	}, nil
}

// GetOwnProfile returns the authenticated user's profile
func (h *UserHandler) GetOwnProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	resp, err := h.buildProfileResponse(user, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateProfile updates the authenticated user's name and profile fields
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}
	profile, err := h.profileRepository.GetOrCreateByUserID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.profileRepository.Update(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp, err := h.buildProfileResponse(user, currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProfileByUsername returns a public profile by username
func (h *UserHandler) GetProfileByUsername(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp, err := h.buildProfileResponse(user, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// GetProfileByUserID returns a public profile by user id
func (h *UserHandler) GetProfileByUserID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp, err := h.buildProfileResponse(user, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// SearchUsers searches users by username or name
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]models.UserCompact, len(users))
	for i, u := range users {
		avatarURL := ""
		if profile, err := h.profileRepository.GetOrCreateByUserID(u.ID); err == nil {
			avatarURL = profile.AvatarURL
		}
		results[i] = u.ToCompact(avatarURL)
	}
	return c.JSON(http.StatusOK, results)
}
