package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rapidcourier/courier-backend/internal/api/middleware"
	"github.com/rapidcourier/courier-backend/internal/config"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	resetService *service.PasswordResetService
	cfg          *config.Config
}

func NewAuthHandler(authService *service.AuthService, resetService *service.PasswordResetService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		resetService: resetService,
		cfg:          cfg,
	}
}

type RegisterRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	DoorNumber   string `json:"doorNumber"`
	BuildingName string `json:"buildingName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordResponse struct {
	ExpiresAt time.Time `json:"expiresAt"`
	// ResetToken is only populated outside production; real deployments
	// deliver it to the registered email address instead.
	ResetToken string `json:"resetToken,omitempty"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Phone:        req.Phone,
		DoorNumber:   req.DoorNumber,
		BuildingName: req.BuildingName,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			respondValidationError(w, "Missing required fields", verr.Fields)
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondError(w, http.StatusConflict, "Email already registered")
		default:
			log.Printf("ERROR [auth.Register] %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("ERROR [auth.Login] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	result, err := h.resetService.Request(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Email not found")
			return
		}
		log.Printf("ERROR [auth.ForgotPassword] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := ForgotPasswordResponse{ExpiresAt: result.ExpiresAt}
	if !h.cfg.IsProduction() {
		resp.ResetToken = result.Token
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.resetService.Consume(r.Context(), req.Email, req.Token, req.NewPassword)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			respondValidationError(w, "Missing required fields", verr.Fields)
		case errors.Is(err, domain.ErrInvalidOrExpiredToken):
			respondError(w, http.StatusBadRequest, "Invalid or expired reset token")
		default:
			log.Printf("ERROR [auth.ResetPassword] %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [auth.Me] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
