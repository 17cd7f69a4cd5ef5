package application

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ValidationError lists the fields a request was missing or got wrong.
// Handlers surface Message verbatim with a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateItemInput checks the fields required for create and update.
// Category and description are optional.
func validateItemInput(in ItemInput) error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		missing = append(missing, "imageUrl")
	}
	if strings.TrimSpace(in.AffiliateURL) == "" {
		missing = append(missing, "affiliateUrl")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	for _, u := range []string{in.ImageURL, in.AffiliateURL} {
		if err := validateURL(u); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &ValidationError{Message: fmt.Sprintf("'%s' is not a valid URL", raw)}
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return &ValidationError{Message: fmt.Sprintf("'%s' is not a valid email address", email)}
	}
	return nil
}
