package response

import (
	"time"

	"staffing_service/internal/adapter/http/validation"

	"github.com/shopspring/decimal"
)

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(validation.DateLayout)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := date(*t)
	return &s
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
