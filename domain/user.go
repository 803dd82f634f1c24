package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully, please verify your email"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetMe       = "user retrieved successfully"
	MessageSuccessVerifyEmail = "email verified successfully"
	MessageSuccessSubscribe   = "subscription transaction created"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetMe       = "failed to retrieve user"
	MessageFailedVerifyEmail = "failed to verify email"
	MessageFailedSubscribe   = "failed to create subscription transaction"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyPremium     = errors.New("user already has premium access")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Email      string    `json:"email"`
		IsVerified bool      `json:"is_verified"`
		IsPremium  bool      `json:"is_premium"`
		CreatedAt  time.Time `json:"created_at"`
	}

	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		RedirectURL string `json:"redirect_url"`
		Token       string `json:"token"`
	}
)
