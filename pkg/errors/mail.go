package errors

// ErrEmptyMailBody is returned when a mail is built with no text content.
// The provider rejects messages without a body.
var ErrEmptyMailBody = New("mail body text is required")
