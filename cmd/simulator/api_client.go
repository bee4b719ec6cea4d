package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Booking struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode"`
	Status       string `json:"status"`
	PickupCity   string `json:"pickupCity"`
	DropoffCity  string `json:"dropoffCity"`
	VehicleType  string `json:"vehicleType"`
	CreatedAt    string `json:"createdAt"`
}

// RegisterUser creates a new user account with a generated email
func (c *APIClient) RegisterUser(baseName string) (*User, string, error) {
	email := fmt.Sprintf("%s_%d@example.com", baseName, time.Now().UnixNano()%100000)

	body := map[string]string{
		"email":      email,
		"password":   "testpassword123",
		"fullName":   baseName,
		"phone":      "9876543210",
		"doorNumber": "42",
		"street":     "MG Road",
		"city":       "Chennai",
		"state":      "Tamil Nadu",
		"pincode":    "600001",
	}

	resp, err := c.post("/auth/register", body, "")
	if err != nil {
		return nil, "", fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("register failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.User, result.Token, nil
}

// Login authenticates an existing account
func (c *APIClient) Login(email, password string) (*User, string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.post("/auth/login", body, "")
	if err != nil {
		return nil, "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.User, result.Token, nil
}

// CreateBooking creates a courier booking for the authenticated user
func (c *APIClient) CreateBooking(token, fromCity, toCity, vehicleType string) (*Booking, error) {
	body := map[string]interface{}{
		"senderName":         "Sim Sender",
		"senderPhone":        "9876500001",
		"pickupDoorNumber":   "12",
		"pickupStreet":       "Anna Salai",
		"pickupCity":         fromCity,
		"pickupState":        "Tamil Nadu",
		"pickupPincode":      "600002",
		"receiverName":       "Sim Receiver",
		"receiverPhone":      "9876500002",
		"deliveryDoorNumber": "7",
		"deliveryStreet":     "Brigade Road",
		"deliveryCity":       toCity,
		"deliveryState":      "Karnataka",
		"deliveryPincode":    "560001",
		"packageType":        "Documents",
		"description":        "Simulated parcel",
		"fragile":            false,
		"vehicleType":        vehicleType,
		"pickupDate":         time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	resp, err := c.post("/bookings", body, token)
	if err != nil {
		return nil, fmt.Errorf("create booking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create booking failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &booking, nil
}

// ListBookings fetches the user's bookings
func (c *APIClient) ListBookings(token string) ([]Booking, error) {
	resp, err := c.get("/bookings", token)
	if err != nil {
		return nil, fmt.Errorf("list bookings request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list bookings failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var bookings []Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return bookings, nil
}

func (c *APIClient) get(path, token string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.httpClient.Do(req)
}

func (c *APIClient) post(path string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.httpClient.Do(req)
}
