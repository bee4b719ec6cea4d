package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rapidcourier/courier-backend/internal/api/middleware"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest uses pointers so absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName"`
	Phone        *string `json:"phone"`
	DoorNumber   *string `json:"doorNumber"`
	BuildingName *string `json:"buildingName"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [profile.GetProfile] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.Update(r.Context(), userID, service.UpdateProfileInput{
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
			respondValidationError(w, "Invalid profile fields", verr.Fields)
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR [profile.UpdateProfile] %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, user)
}
