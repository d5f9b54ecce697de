package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/logger"
	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/services"
)

type SignupRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProfileRequest struct {
	Username     string               `json:"username"`
	ShippingInfo *models.ShippingInfo `json:"shippingInfo"`
	PaymentInfo  *models.PaymentInfo  `json:"paymentInfo"`
}

type AuthController struct {
	Auth   *services.AuthService
	Tokens *services.TokenService
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService) *AuthController {
	return &AuthController{Auth: auth, Tokens: tokens}
}

// Signup registers a new account. Password length and confirmation are
// checked here at the boundary, not in the auth manager.
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "password must be at least 6 characters and all fields are required", err))
		return
	}
	if req.Password != req.ConfirmPassword {
		c.Error(apperrors.New(http.StatusBadRequest, "passwords do not match", nil))
		return
	}

	err := ac.Auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		c.Error(apperrors.New(http.StatusConflict, err.Error(), err))
		return
	}
	if err != nil {
		logger.Log.Error("signup failed", zap.Error(err))
		c.Error(apperrors.New(http.StatusInternalServerError, "signup failed", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "signup successful, please log in"})
}

// Login authenticates and returns the session plus a bearer token for
// the protected routes. Unknown email and wrong password answer the
// same way.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "email and password are required", err))
		return
	}

	session, err := ac.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(apperrors.New(http.StatusUnauthorized, services.ErrInvalidCredentials.Error(), err))
		return
	}

	token, err := ac.Tokens.Generate(req.Email)
	if err != nil {
		logger.Log.Error("token generation failed", zap.Error(err))
		c.Error(apperrors.New(http.StatusInternalServerError, "login failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"authState": session, "token": token})
}

// Logout clears the session
func (ac *AuthController) Logout(c *gin.Context) {
	ac.Auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GetAccount returns the current session state
func (ac *AuthController) GetAccount(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Auth.Current())
}

// UpdateProfile merges the posted fields into the session user and the
// registered-users table entry
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "invalid payload", err))
		return
	}
	if req.ShippingInfo != nil && req.ShippingInfo.PostalCode != "" && len(req.ShippingInfo.PostalCode) != 6 {
		c.Error(apperrors.New(http.StatusBadRequest, "postal code must be 6 digits", nil))
		return
	}

	session, err := ac.Auth.UpdateProfile(c.Request.Context(), services.ProfileUpdate{
		Username:     req.Username,
		ShippingInfo: req.ShippingInfo,
		PaymentInfo:  req.PaymentInfo,
	})
	if errors.Is(err, services.ErrNotAuthenticated) {
		c.Error(apperrors.New(http.StatusUnauthorized, err.Error(), err))
		return
	}
	if err != nil {
		logger.Log.Error("profile update failed", zap.Error(err))
		c.Error(apperrors.New(http.StatusInternalServerError, "profile update failed", err))
		return
	}

	c.JSON(http.StatusOK, session)
}
