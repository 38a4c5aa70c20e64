package models

// BookingRequest is a consultation request from the booking form.
// It is never stored.
type BookingRequest struct {
	Name    string `form:"name"`
	Phone   string `form:"phone"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Validation messages shown under the booking form fields
const (
	MsgRequired     = "שדה חובה"
	MsgInvalidPhone = "מספר טלפון לא תקין"
	MsgInvalidEmail = "כתובת דוא\"ל לא תקינה"
)

// FieldErrors maps a form field name to its validation message
type FieldErrors map[string]string

// Has reports whether field failed validation
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// BookingReceipt is returned by a successful (simulated) submission
type BookingReceipt struct {
	Reference string
	Name      string
}
