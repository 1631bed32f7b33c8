package prompt

import "regexp"

// Placeholders substituted by RedactPII
const (
	EmailPlaceholder = "[EMAIL]"
	PhonePlaceholder = "[PHONE]"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

	// Ten to fourteen digits, optionally separated by single spaces, dots or dashes
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\b\d(?:[\s.-]?\d){9,13}\b`)
)

// ContainsPII reports whether text carries an email address or phone number
func ContainsPII(text string) bool {
	return emailPattern.MatchString(text) || phonePattern.MatchString(text)
}

// RedactPII replaces email addresses and phone numbers with placeholders
func RedactPII(text string) string {
	text = emailPattern.ReplaceAllString(text, EmailPlaceholder)
	return phonePattern.ReplaceAllString(text, PhonePlaceholder)
}
