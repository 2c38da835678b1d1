// Package contact validates contact form submissions. Validation is
// synchronous and field-level; any violation blocks the submission before
// anything else runs.
package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

const (
	maxNameLen    = 100
	maxEmailLen   = 255
	maxSubjectLen = 200
	minMessageLen = 10
	maxMessageLen = 2000
)

// Normalize trims every field in place, matching how the form trims before
// validating.
func (f *Form) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate returns a field -> message map; an empty map means the form is
// acceptable. Length limits count characters, not bytes.
func Validate(f *Form) map[string]string {
	errs := make(map[string]string)

	if f.Name == "" {
		errs["name"] = "Name is required"
	} else if utf8.RuneCountInString(f.Name) > maxNameLen {
		errs["name"] = "Name too long"
	}

	if !validEmail(f.Email) {
		errs["email"] = "Invalid email address"
	} else if utf8.RuneCountInString(f.Email) > maxEmailLen {
		errs["email"] = "Email too long"
	}

	if f.Subject == "" {
		errs["subject"] = "Subject is required"
	} else if utf8.RuneCountInString(f.Subject) > maxSubjectLen {
		errs["subject"] = "Subject too long"
	}

	if n := utf8.RuneCountInString(f.Message); n < minMessageLen {
		errs["message"] = "Message must be at least 10 characters"
	} else if n > maxMessageLen {
		errs["message"] = "Message too long"
	}

	return errs
}

// validEmail accepts a bare address only; display-name forms like
// "Name <a@b.com>" parse but are not what the form field holds.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
