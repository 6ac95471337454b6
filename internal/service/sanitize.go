package service

import (
	"strings"

	"github.com/techq/techq-be/internal/model"
)

// markupReplacer strips angle brackets and entity-encodes quotes and
// backslashes. It only covers what the email templates interpolate into.
var markupReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	`"`, "&quot;",
	"'", "&#x27;",
	`\`, "&#x5C;",
)

func SanitizeField(s string) string {
	return markupReplacer.Replace(s)
}

// SanitizeSubmission returns a copy of s with every field sanitized.
func SanitizeSubmission(s model.ContactSubmission) model.ContactSubmission {
	return model.ContactSubmission{
		FirstName: SanitizeField(s.FirstName),
		LastName:  SanitizeField(s.LastName),
		Email:     SanitizeField(s.Email),
		Phone:     SanitizeField(s.Phone),
		Company:   SanitizeField(s.Company),
		Service:   SanitizeField(s.Service),
		Message:   SanitizeField(s.Message),
		Honeypot:  SanitizeField(s.Honeypot),
	}
}

// truncateRunes cuts s to at most n characters, appending "..." when cut.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
