package contactclient

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is the "valid e-mail address" production browsers apply to
// <input type="email">.
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

// sanitizeEmail applies the browser value sanitization for email inputs:
// line breaks removed, surrounding whitespace trimmed.
func sanitizeEmail(v string) string {
	v = strings.NewReplacer("\r", "", "\n", "").Replace(v)
	return strings.Trim(v, " \t\f")
}

// checkConstraints mirrors required and type=email validation. Required
// only rejects the empty string.
func checkConstraints(f Fields) error {
	switch {
	case f.Name == "":
		return fmt.Errorf("%w: %s is required", ErrConstraint, FieldName)
	case f.Email == "":
		return fmt.Errorf("%w: %s is required", ErrConstraint, FieldEmail)
	case !emailPattern.MatchString(f.Email):
		return fmt.Errorf("%w: %s is not a valid address", ErrConstraint, FieldEmail)
	case f.Message == "":
		return fmt.Errorf("%w: %s is required", ErrConstraint, FieldMessage)
	}
	return nil
}
