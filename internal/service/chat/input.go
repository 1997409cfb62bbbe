package chat

import (
	"net/mail"

	"github.com/techconnect-india/backend/internal/domain"
)

// SendInput holds parameters for the send operation.
type SendInput struct {
	ReceiverEmail string
	Body          string
	// maxBodyLength is injected by the service from config.
	maxBodyLength int
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.ReceiverEmail == "" {
		errs = append(errs, domain.FieldError{Field: "receiver", Message: "required"})
	} else if _, err := mail.ParseAddress(i.ReceiverEmail); err != nil {
		errs = append(errs, domain.FieldError{Field: "receiver", Message: "invalid format"})
	}

	if i.Body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if i.maxBodyLength > 0 && len(i.Body) > i.maxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
