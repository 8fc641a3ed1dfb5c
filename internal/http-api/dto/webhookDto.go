package dto

import "strings"

// IdentityEvent is the provider's account webhook payload.
type IdentityEvent struct {
	Type string            `json:"type"`
	Data IdentityEventData `json:"data"`
}

type IdentityEventData struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ImageURL       string  `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// PrimaryEmail returns the first address the provider sent, or "".
func (d IdentityEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

// FullName joins first and last name the way the provider displays them.
func (d IdentityEventData) FullName() string {
	parts := make([]string, 0, 2)
	if d.FirstName != nil && *d.FirstName != "" {
		parts = append(parts, *d.FirstName)
	}
	if d.LastName != nil && *d.LastName != "" {
		parts = append(parts, *d.LastName)
	}
	return strings.Join(parts, " ")
}
