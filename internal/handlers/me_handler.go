package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated user and, when it has one, its tenant.
func (h *MeHandler) GetMe(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND active = ?", caller.UserID, true).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	resp := gin.H{"user": userPayload(&user)}

	if user.ClientID != nil {
		var client models.Client
		if err := h.db.WithContext(c.Request.Context()).
			First(&client, "id = ?", *user.ClientID).Error; err == nil {
			resp["client"] = client
		}
	}

	c.JSON(http.StatusOK, resp)
}
