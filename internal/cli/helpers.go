package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bacheca-dev/bacheca/internal/models"
)

// DueDateLayout is the wire format for due dates on the command line
const DueDateLayout = "2006-01-02"

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	matched, err := regexp.MatchString(`^#[0-9A-Fa-f]{6}$`, color)
	if err != nil {
		return fmt.Errorf("error validating color: %w", err)
	}
	if !matched {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParseStatus maps a status string to its model value
func ParseStatus(status string) (models.Status, error) {
	switch strings.ToLower(status) {
	case "completed", "done":
		return models.StatusCompleted, nil
	case "not-completed", "open", "pending":
		return models.StatusNotCompleted, nil
	}
	return "", fmt.Errorf("invalid status '%s' (must be: completed, not-completed)", status)
}

// ParseDueDate parses a due date in YYYY-MM-DD format. Empty input means no
// due date and returns nil.
func ParseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date '%s' (must be YYYY-MM-DD)", value)
	}
	return &d, nil
}
