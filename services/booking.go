package services

import (
	"context"
	"errors"
	"html"
	"log"
	"regexp"
	"strings"
	"time"

	"beta_law_site/models"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// ErrValidation is returned when a booking request has invalid fields
var ErrValidation = errors.New("booking request is invalid")

var (
	// Israeli phone numbers: a leading 0 followed by 8 or 9 digits
	phonePattern = regexp.MustCompile(`^0\d{8,9}$`)
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

	// Form fields are plain text; any markup is stripped
	bookingPolicy = bluemonday.StrictPolicy()
)

const maxMessageLength = 2000

// NormalizeBooking trims and strips markup from every field
func NormalizeBooking(req models.BookingRequest) models.BookingRequest {
	return models.BookingRequest{
		Name:    sanitizeField(req.Name),
		Phone:   sanitizeField(req.Phone),
		Email:   strings.ToLower(sanitizeField(req.Email)),
		Message: truncate(sanitizeField(req.Message), maxMessageLength),
	}
}

// ValidateBooking checks a normalized request. Name, phone and email are
// required; the message is optional.
func ValidateBooking(req models.BookingRequest) models.FieldErrors {
	errs := models.FieldErrors{}

	if req.Name == "" {
		errs["name"] = models.MsgRequired
	}

	switch phone := compactPhone(req.Phone); {
	case phone == "":
		errs["phone"] = models.MsgRequired
	case !phonePattern.MatchString(phone):
		errs["phone"] = models.MsgInvalidPhone
	}

	switch {
	case req.Email == "":
		errs["email"] = models.MsgRequired
	case !emailPattern.MatchString(req.Email):
		errs["email"] = models.MsgInvalidEmail
	}

	return errs
}

// BookingService accepts consultation requests. There is no backend behind it:
// a submission waits for the configured delay, is logged and acknowledged.
type BookingService struct {
	delay time.Duration
	after func(time.Duration) <-chan time.Time
}

// NewBookingService creates a booking service with a simulated submission delay
func NewBookingService(delay time.Duration) *BookingService {
	return &BookingService{
		delay: delay,
		after: time.After,
	}
}

// Submit validates the request and simulates sending it. The returned
// FieldErrors is non-empty only together with ErrValidation.
func (s *BookingService) Submit(ctx context.Context, req models.BookingRequest) (*models.BookingReceipt, models.FieldErrors, error) {
	req = NormalizeBooking(req)
	if errs := ValidateBooking(req); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-s.after(s.delay):
		}
	}

	receipt := &models.BookingReceipt{
		Reference: strings.ToUpper(uuid.New().String()[:8]),
		Name:      req.Name,
	}
	log.Printf("[INFO] Booking request %s received (name=%q phone=%s email=%s message_len=%d)",
		receipt.Reference, req.Name, compactPhone(req.Phone), req.Email, len([]rune(req.Message)))

	return receipt, nil, nil
}

// sanitizeField strips markup. The policy escapes what it keeps, so the result is
// unescaped again; the views escape on output.
func sanitizeField(s string) string {
	return strings.TrimSpace(html.UnescapeString(bookingPolicy.Sanitize(strings.TrimSpace(s))))
}

// compactPhone drops the separators people type ("050-123 4567")
func compactPhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "", "(", "", ")", "").Replace(phone)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
