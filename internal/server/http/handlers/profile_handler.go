package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/opsdash/internal/domain/errors"
	"github.com/polkiloo/opsdash/internal/server/http/dto"
)

// ProfileHandler manages account mutation endpoints.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// ChangePassword handles POST /user/change-password.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Username == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username is required"})
		return
	}

	err := h.facade.ChangePassword(c.Request.Context(), req.Username, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyPassword):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "new password is required"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "old password incorrect"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ChangeAvatar handles POST /user/change-avatar. The request is multipart
// with an avatar file part and a username field.
func (h *ProfileHandler) ChangeAvatar(c *gin.Context) {
	username := c.PostForm("username")
	file, err := c.FormFile("avatar")
	if err != nil || username == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing avatar or username"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing avatar or username"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read avatar"})
		return
	}

	stored, err := h.facade.ChangeAvatar(c.Request.Context(), username, data)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyAvatar):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing avatar or username"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update avatar"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AvatarResponse{Avatar: base64.StdEncoding.EncodeToString(stored)})
}

// RemoveAvatar handles DELETE /user/change-avatar.
func (h *ProfileHandler) RemoveAvatar(c *gin.Context) {
	var req dto.RemoveAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username is required"})
		return
	}

	if err := h.facade.RemoveAvatar(c.Request.Context(), req.Username); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to remove avatar"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Profile handles GET /user/profile for the authenticated account.
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := CurrentUsername(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	acc, err := h.facade.Profile(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, profileResponse(acc))
}
