package errors

var (
	// ErrTimeoutExceeded is returned when graceful timeout period exceeds.
	ErrTimeoutExceeded = New("Timeout exceeded")
	// ErrInquirySubmitFailed is the generic message returned when an inquiry write fails.
	ErrInquirySubmitFailed = New("Failed to submit inquiry")
	// ErrInquiryFetchFailed is the generic message returned when the inquiry listing fails.
	ErrInquiryFetchFailed = New("Failed to fetch inquiries")
	// ErrLeadSaveFailed is the generic message returned when a brochure lead write fails.
	ErrLeadSaveFailed = New("Failed to save lead")
	// ErrLeadFetchFailed is the generic message returned when the brochure lead listing fails.
	ErrLeadFetchFailed = New("Failed to fetch leads")
	// ErrUnauthorized is returned when the admin token is missing or invalid.
	ErrUnauthorized = New("Unauthorized")
	// ErrInvalidInform is returned when the inform value is outside the allowed set.
	ErrInvalidInform = New("Invalid inform value")
	// ErrInvalidPhone is returned when the phone number fails the digit-count check.
	ErrInvalidPhone = New("Phone number must be 10 digits with an optional country code")
)

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}
