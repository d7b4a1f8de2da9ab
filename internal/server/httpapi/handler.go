// Package httpapi exposes the registration and login workflows over HTTP.
// Handlers only translate service results into status codes; all credential
// logic lives in the services package.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/logging"
	"github.com/dmitrijs2005/eduauth/internal/server/services"
	"github.com/dmitrijs2005/eduauth/internal/server/token"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts *services.AccountService
	issuer   token.Issuer
	logger   logging.Logger
}

func NewHandler(accounts *services.AccountService, issuer token.Issuer, l logging.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		issuer:   issuer,
		logger:   l.With("module", "httpapi"),
	}
}

// NewRouter builds the gin engine with the two credential routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	return r
}

type credentialsRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "identifier, secret and role are required",
		})
		return
	}

	ctx := c.Request.Context()

	_, err := h.accounts.Register(ctx, req.Identifier, req.Secret, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": common.ErrorAlreadyExists.Error()})
		default:
			h.logger.Error(ctx, "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": common.ErrorInternal.Error()})
		}
		return
	}

	h.logger.Info(ctx, "account registered", "role", req.Role)
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

type loginResponse struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// Login handles POST /api/login. Every credential failure produces the same
// 401 body.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "identifier, secret and role are required",
		})
		return
	}

	ctx := c.Request.Context()

	result, err := h.accounts.Authenticate(ctx, req.Identifier, req.Secret, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"message": common.ErrorUnauthorized.Error()})
		default:
			h.logger.Error(ctx, "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": common.ErrorInternal.Error()})
		}
		return
	}

	sessionToken, err := h.issuer.Issue(result.AccountID, result.Role)
	if err != nil {
		h.logger.Error(ctx, "token issuance failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": common.ErrorInternal.Error()})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccountID: result.AccountID,
		Role:      string(result.Role),
		Token:     sessionToken,
	})
}
