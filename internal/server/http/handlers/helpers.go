package handlers

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/opsdash/internal/domain/model"
	"github.com/polkiloo/opsdash/internal/server/http/dto"
	"github.com/polkiloo/opsdash/internal/server/http/middleware"
)

// CurrentUsername extracts the authenticated username from context.
func CurrentUsername(c *gin.Context) string {
	val, ok := c.Get(middleware.UsernameContextKey)
	if !ok {
		return ""
	}
	username, _ := val.(string)
	return username
}

func profileResponse(acc *model.Account) dto.ProfileResponse {
	resp := dto.ProfileResponse{Username: acc.Username, Name: acc.DisplayName}
	if acc.HasAvatar() {
		resp.Avatar = base64.StdEncoding.EncodeToString(acc.Avatar)
	}
	return resp
}
