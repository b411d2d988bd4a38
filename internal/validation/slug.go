package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var groupSlugRegex = regexp.MustCompile(`^[a-z0-9-]{3,200}$`)

// Route segments that would shadow API paths if used as group slugs.
var reservedGroupSlugs = map[string]struct{}{
	"api":     {},
	"auth":    {},
	"posts":   {},
	"groups":  {},
	"users":   {},
	"feed":    {},
	"follow":  {},
	"health":  {},
	"metrics": {},
	"login":   {},
	"signup":  {},
}

// ValidateGroupSlug validates group slug format and reserved names.
func ValidateGroupSlug(slug string) error {
	if !groupSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 3-200 characters and contain only lowercase letters, numbers, and hyphens")
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}
	if _, exists := reservedGroupSlugs[slug]; exists {
		return fmt.Errorf("slug is reserved")
	}
	return nil
}
