package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
	"github.com/dheerendra45/news-analyzer/internal/services"
)

// AuthHandlers handles authentication HTTP requests.
type AuthHandlers struct {
	authSvc   domain.AuthService
	uploadSvc *services.UploadService
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, uploadSvc *services.UploadService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:   authSvc,
		uploadSvc: uploadSvc,
	}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest represents a password login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OTPVerifyRequest represents step 2 of the admin login flow.
type OTPVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register handles user self-registration.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toUserResponse(user)})
}

// RegisterAdmin handles admin self-registration with domain validation.
func (h *AuthHandlers) RegisterAdmin(c *gin.Context) {
	h.createAdmin(c)
}

// CreateAdmin handles admin creation by an existing admin. The route is
// gated by RequireAdmin; the body handling is identical to self-registration.
func (h *AuthHandlers) CreateAdmin(c *gin.Context) {
	h.createAdmin(c)
}

func (h *AuthHandlers) createAdmin(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.authSvc.RegisterAdmin(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminDomainNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin email must be from an allowed domain"})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Email or username already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toUserResponse(admin)})
}

// Login handles password login for ordinary users.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"expires_in":   result.ExpiresIn,
		"user":         toUserResponse(result.User),
	}})
}

// AdminLogin handles step 1 of the two-factor admin flow: password check
// plus OTP dispatch. Wrong password, unknown account, and non-admin role all
// collapse to the same unauthorized response.
func (h *AuthHandlers) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.AdminLoginStart(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPDispatchFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification code, please try again"})
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotAdmin):
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message":  "Verification code sent to your email",
		"otp_sent": true,
	}})
}

// AdminVerifyOTP handles step 2: code verification and token issuance.
func (h *AuthHandlers) AdminVerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.AdminLoginComplete(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account no longer exists"})
			return
		}
		// Missing, expired, exhausted, and mismatched codes are not
		// distinguished for the caller.
		log.Printf("ADMIN_OTP_REJECTED: email=%s reason=%v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired verification code"})
		return
	}

	log.Printf("ADMIN_LOGIN: email=%s user_id=%s", result.User.Email, result.User.ID)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"expires_in":   result.ExpiresIn,
		"user":         toUserResponse(result.User),
	}})
}

// Me returns the current user, re-read from the store so the response
// reflects the latest role and active state rather than the token claims.
func (h *AuthHandlers) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	user, err := h.authSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

// UploadImage stores an admin-uploaded image.
func (h *AuthHandlers) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	url, err := h.uploadSvc.SaveImage(file)
	if err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "filename": file.Filename})
}

// UploadPDF stores an admin-uploaded PDF.
func (h *AuthHandlers) UploadPDF(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	url, err := h.uploadSvc.SavePDF(file)
	if err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "filename": file.Filename})
}

func (h *AuthHandlers) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
	case errors.Is(err, domain.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds maximum allowed size"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
	}
}
