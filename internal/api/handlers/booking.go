package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rapidcourier/courier-backend/internal/api/middleware"
	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/service"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest mirrors the booking form payload.
type CreateBookingRequest struct {
	SenderName  string `json:"senderName"`
	SenderPhone string `json:"senderPhone"`

	PickupDoorNumber   string `json:"pickupDoorNumber"`
	PickupBuildingName string `json:"pickupBuildingName"`
	PickupStreet       string `json:"pickupStreet"`
	PickupCity         string `json:"pickupCity"`
	PickupState        string `json:"pickupState"`
	PickupPincode      string `json:"pickupPincode"`

	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`

	DeliveryDoorNumber   string `json:"deliveryDoorNumber"`
	DeliveryBuildingName string `json:"deliveryBuildingName"`
	DeliveryStreet       string `json:"deliveryStreet"`
	DeliveryCity         string `json:"deliveryCity"`
	DeliveryState        string `json:"deliveryState"`
	DeliveryPincode      string `json:"deliveryPincode"`

	PackageType string `json:"packageType"`
	Description string `json:"description"`
	Fragile     bool   `json:"fragile"`

	VehicleType string `json:"vehicleType"`
	PickupDate  string `json:"pickupDate"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), userID, service.CreateBookingInput{
		SenderName:           req.SenderName,
		SenderPhone:          req.SenderPhone,
		PickupDoorNumber:     req.PickupDoorNumber,
		PickupBuildingName:   req.PickupBuildingName,
		PickupStreet:         req.PickupStreet,
		PickupCity:           req.PickupCity,
		PickupState:          req.PickupState,
		PickupPincode:        req.PickupPincode,
		ReceiverName:         req.ReceiverName,
		ReceiverPhone:        req.ReceiverPhone,
		DeliveryDoorNumber:   req.DeliveryDoorNumber,
		DeliveryBuildingName: req.DeliveryBuildingName,
		DeliveryStreet:       req.DeliveryStreet,
		DeliveryCity:         req.DeliveryCity,
		DeliveryState:        req.DeliveryState,
		DeliveryPincode:      req.DeliveryPincode,
		PackageType:          req.PackageType,
		Description:          req.Description,
		Fragile:              req.Fragile,
		VehicleType:          req.VehicleType,
		PickupDate:           req.PickupDate,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			respondValidationError(w, "Missing required fields", verr.Fields)
		case errors.Is(err, domain.ErrCodeGenerationExhausted):
			log.Printf("ERROR [booking.Create] tracking code generation exhausted")
			respondError(w, http.StatusInternalServerError, "Could not allocate a tracking code")
		default:
			log.Printf("ERROR [booking.Create] %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookings, err := h.bookingService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [booking.List] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := h.bookingService.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			respondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		log.Printf("ERROR [booking.Get] %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, booking)
}
