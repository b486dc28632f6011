package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	userService service.UserService
	authService service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

type ProfileResponse struct {
	UserResponse
	Token string `json:"token,omitempty"`
}

type AvatarUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// GetMe returns the authenticated user's profile with a refreshed token,
// used by the client to restore its session on app start.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}

	token, err := h.authService.TokenFor(user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to refresh session token")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserResponse: MapUserToResponse(user),
		Token:        token,
	})
}

// UpdateMe updates name, avatar, and/or password. Empty fields are left
// unchanged. A fresh token is returned so the client session stays valid.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req.Name, req.Avatar, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	token, err := h.authService.TokenFor(user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to refresh session token")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserResponse: MapUserToResponse(user),
		Token:        token,
	})
}

// AvatarUploadURL returns a presigned PUT URL for a new avatar image.
func (h *UserHandler) AvatarUploadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AvatarUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	resp, err := h.userService.RequestAvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAvatarType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AvatarDownloadURL resolves the stored avatar to a fetchable URL.
func (h *UserHandler) AvatarDownloadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	url, err := h.userService.AvatarURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve avatar URL")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
