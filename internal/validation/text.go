// Package validation enforces field-level rules before entities are persisted.
package validation

import (
	"strings"

	"yatube/internal/models"
)

// CleanText trims surrounding whitespace and rejects text that is empty
// afterwards. The same rule applies to post and comment text. The text is
// otherwise passed through unchanged; escaping is the display layer's job.
func CleanText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", models.NewValidationError("empty field")
	}
	return text, nil
}
