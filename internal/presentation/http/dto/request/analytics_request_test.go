package request

import (
	"testing"
	"time"

	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsOverviewRequest_ToAnalyticsRequest(t *testing.T) {
	req, errs := AnalyticsOverviewRequest{From: "2024-01-03", To: "2024-01-03"}.ToAnalyticsRequest()

	require.Empty(t, errs)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), req.From)
	assert.Equal(t, req.From, req.To)
	assert.Equal(t, enum.GranularityDay, req.Granularity)
}

func TestAnalyticsOverviewRequest_Invalid(t *testing.T) {
	_, errs := AnalyticsOverviewRequest{From: "2024-02-01", To: "2024-01-03", GroupBy: "week"}.ToAnalyticsRequest()
	require.Len(t, errs, 1)
	assert.Equal(t, "from", errs[0].Field)

	_, errs = AnalyticsOverviewRequest{From: "01/02/2024", To: "2024-01-03", GroupBy: "hour"}.ToAnalyticsRequest()
	require.Len(t, errs, 2)
	assert.Equal(t, "from", errs[0].Field)
	assert.Equal(t, "groupBy", errs[1].Field)
}
