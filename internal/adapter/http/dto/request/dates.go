package request

import (
	"time"

	"staffing_service/internal/adapter/http/validation"
	"staffing_service/internal/domain/entities"
)

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(validation.DateLayout, value)
	if err != nil {
		return time.Time{}, entities.NewValidationError("%s must be a YYYY-MM-DD date", field)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
