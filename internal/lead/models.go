package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "plotdesk/pkg/domain-errors"
)

// Lead is one inquiry captured from a contact form.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	Project   string    `json:"project,omitempty"`
	Source    string    `json:"source,omitempty"`
	ClientIP  string    `json:"-"`
	Browser   string    `json:"browser,omitempty"`
	OS        string    `json:"os,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLead validates form input and stamps identity. Either an email or a
// phone number is enough to follow up, so only one of the two is required.
func NewLead(name, email, phone, message, project, source string, now time.Time) (*Lead, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if email == "" && phone == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "an email or phone number is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "email address is not valid")
	}

	return &Lead{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   strings.TrimSpace(message),
		Project:   strings.TrimSpace(project),
		Source:    strings.TrimSpace(source),
		CreatedAt: now,
	}, nil
}
