package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/adanyl0v/go-tasks/internal/models"
)

// FormatTimestamp converts a datetime-local value such as
// "2024-05-01T09:00" into "May 01, 2024 | 09:00".
func FormatTimestamp(raw string) (string, error) {
	t, err := time.Parse(models.InputTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidTimestamp, raw, err)
	}
	return t.Format(models.TimeLayout), nil
}

// formatTimeRange returns the display form of start and end, or two nils
// if the range is not fully specified. With strict set, exactly one of
// start and end being empty is an error.
func formatTimeRange(start, end string, strict bool) (*string, *string, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		if strict && start != end {
			return nil, nil, ErrIncompleteTimeRange
		}
		return nil, nil, nil
	}

	formattedStart, err := FormatTimestamp(start)
	if err != nil {
		return nil, nil, err
	}
	formattedEnd, err := FormatTimestamp(end)
	if err != nil {
		return nil, nil, err
	}
	return &formattedStart, &formattedEnd, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
