package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	logger *logging.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, logger *logging.Logger) *AuthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthHandler{db: db, config: cfg, logger: logger}
}

// --------- Requests ---------

type RegisterRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientRif   string `json:"client_rif" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a tenant with the next sequential code and its owner.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email, ok := validators.NormalizeEmail(req.Email)
	if !ok || (h.config.VerifyEmailDomains && !validators.IsEmailDomainValid(email)) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email"))
		return
	}
	rif := strings.ToUpper(strings.TrimSpace(req.ClientRif))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	var (
		client models.Client
		user   models.User
	)

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Client{}).Where("rif = ?", rif).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrConflict("duplicate_rif")
		}
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrConflict("duplicate_email")
		}

		var last int
		if err := tx.Model(&models.Client{}).
			Select("COALESCE(MAX(code), 0)").
			Scan(&last).Error; err != nil {
			return err
		}

		client = models.Client{
			Code:        appointment.NextClientCode(last),
			Name:        strings.TrimSpace(req.ClientName),
			Rif:         rif,
			Phone:       req.ClientPhone,
			Email:       req.ClientEmail,
			NotifySMS:   true,
			NotifyEmail: true,
			Active:      true,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		user = models.User{
			ClientID:     &client.ID,
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Roles:        []string{models.RoleOwner},
			Active:       true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race on code, rif or email
			err = httperr.ErrConflict("duplicate_rif")
		}
		h.logger.Warn("tenant registration failed", "rif", rif, "error", err)
		httperr.Respond(c, err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	httpresp.Created(c, gin.H{
		"user":   userPayload(&user),
		"client": client,
		"token":  token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ? AND active = ?", email, true).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	clientID := ""
	if user.ClientID != nil {
		clientID = *user.ClientID
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"clientId": clientID,
		"roles":    []string(user.Roles),
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"roles":     u.Roles,
		"client_id": u.ClientID,
	}
}
