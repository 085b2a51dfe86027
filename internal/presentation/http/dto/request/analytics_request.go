package request

import (
	"time"

	"github.com/sangkips/autocare-api/internal/application/analytics"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/sangkips/autocare-api/pkg/apperror"
)

// AnalyticsOverviewRequest represents the analytics overview query string
type AnalyticsOverviewRequest struct {
	From    string `form:"from" binding:"required,datetime=2006-01-02"`
	To      string `form:"to" binding:"required,datetime=2006-01-02"`
	GroupBy string `form:"groupBy" binding:"omitempty,oneof=day week month"`
}

// ToAnalyticsRequest parses the dates and checks the range order. GroupBy defaults to day.
func (r AnalyticsOverviewRequest) ToAnalyticsRequest() (analytics.Request, []apperror.FieldError) {
	var fieldErrors []apperror.FieldError

	from, err := time.Parse(analytics.DateLayout, r.From)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, err := time.Parse(analytics.DateLayout, r.To)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
	}
	if len(fieldErrors) == 0 && from.After(to) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "from", Message: "must not be after to"})
	}

	granularity := enum.GranularityDay
	if r.GroupBy != "" {
		granularity = enum.Granularity(r.GroupBy)
	}
	if !granularity.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "groupBy", Message: "must be one of day, week, month"})
	}

	if len(fieldErrors) > 0 {
		return analytics.Request{}, fieldErrors
	}
	return analytics.Request{From: from, To: to, Granularity: granularity}, nil
}
