package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserAlreadyExists     = errors.New("email or username already registered")
	ErrUserInactive          = errors.New("user account is inactive")
	ErrNotAdmin              = errors.New("admin role required")
	ErrAdminDomainNotAllowed = errors.New("email domain not allowed for admin accounts")
)

// OTP errors
var (
	ErrOTPNotFound       = errors.New("otp not found")
	ErrOTPExpired        = errors.New("otp has expired")
	ErrOTPInvalid        = errors.New("invalid otp code")
	ErrOTPMaxAttempts    = errors.New("maximum otp attempts exceeded")
	ErrOTPDispatchFailed = errors.New("otp delivery failed")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Content errors
var (
	ErrNewsNotFound       = errors.New("news not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrCardNotFound       = errors.New("intelligence card not found")
	ErrInvalidID          = errors.New("invalid document id")
	ErrSubscriptionExists = errors.New("email already subscribed")
)

// Upload errors
var (
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
