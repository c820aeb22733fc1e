package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vastra-store/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Appointment types, locations and slots offered by the boutique.
var (
	AppointmentTypes = []string{
		"Studio Appointment",
		"Virtual Consultation",
		"Bridal Consultation",
		"Custom Design Appointment",
	}

	Locations = []string{"Chennai", "Mumbai", "Delhi", "Bangalore"}

	TimeSlots = []string{
		"11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	}
)

var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrInvalidDate     = errors.New("appointment date must be in the future")
	ErrUnknownType     = errors.New("unknown appointment type")
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownSlot     = errors.New("unknown time slot")
)

// Request is one appointment booking.
type Request struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"timeSlot"`
	Type     string    `json:"type"`
	Location string    `json:"location"`
	Notes    string    `json:"notes,omitempty"`
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	if r.Date.Before(time.Now().Truncate(24 * time.Hour)) {
		return ErrInvalidDate
	}
	if !contains(AppointmentTypes, r.Type) {
		return ErrUnknownType
	}
	if !contains(Locations, r.Location) {
		return ErrUnknownLocation
	}
	if !contains(TimeSlots, r.TimeSlot) {
		return ErrUnknownSlot
	}
	return nil
}

// Confirmation carries the reference the customer quotes later.
type Confirmation struct {
	Reference string `json:"reference"`
	Message   string `json:"message,omitempty"`
}

// Client books appointments against the storefront API. Without a
// configured API the booking is accepted locally with a generated
// reference, matching the original form's optimistic behavior.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

func (c *Client) Book(ctx context.Context, req Request) (*Confirmation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if c.baseURL == "" {
		conf := &Confirmation{Reference: uuid.New().String(), Message: "appointment recorded"}
		logger.L().Info("booked appointment locally",
			zap.String("reference", conf.Reference),
			zap.String("type", req.Type))
		return conf, nil
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointments", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("booking service returned %d", res.StatusCode)
	}

	var conf Confirmation
	if err := json.NewDecoder(res.Body).Decode(&conf); err != nil {
		return nil, err
	}
	if conf.Reference == "" {
		conf.Reference = uuid.New().String()
	}
	return &conf, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
