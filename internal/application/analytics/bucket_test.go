package analytics

import (
	"slices"
	"testing"
	"time"

	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func bucketKeys(from, to string, g enum.Granularity) []string {
	var keys []string
	for b := range EnumerateBuckets(date(from), date(to), g) {
		keys = append(keys, BucketKey(b))
	}
	return keys
}

func TestBucketStart_Week_MondayAnchored(t *testing.T) {
	cases := map[string]string{
		"2024-01-01": "2024-01-01", // Monday
		"2024-01-03": "2024-01-01",
		"2024-01-07": "2024-01-01", // Sunday belongs to the preceding Monday
		"2024-01-08": "2024-01-08",
		"2024-03-02": "2024-02-26",
	}
	for in, want := range cases {
		assert.Equal(t, want, BucketKey(BucketStart(date(in), enum.GranularityWeek)), in)
	}
}

func TestBucketStart_DropsTimeOfDay(t *testing.T) {
	got := BucketStart(at("2024-05-17T23:59:59Z"), enum.GranularityDay)
	assert.Equal(t, date("2024-05-17"), got)

	// 01:00 in UTC+3 is still the previous UTC day
	loc := time.FixedZone("AST", 3*60*60)
	got = BucketStart(time.Date(2024, 5, 17, 1, 0, 0, 0, loc), enum.GranularityDay)
	assert.Equal(t, date("2024-05-16"), got)
}

func TestBucketStart_Month(t *testing.T) {
	assert.Equal(t, date("2024-02-01"), BucketStart(at("2024-02-29T10:00:00Z"), enum.GranularityMonth))
}

func TestNextBucket_MonthIsCalendarAware(t *testing.T) {
	assert.Equal(t, date("2024-02-01"), NextBucket(date("2024-01-01"), enum.GranularityMonth))
	assert.Equal(t, date("2024-03-01"), NextBucket(date("2024-02-01"), enum.GranularityMonth))
	assert.Equal(t, date("2025-01-01"), NextBucket(date("2024-12-01"), enum.GranularityMonth))
}

func TestEnumerateBuckets_Examples(t *testing.T) {
	assert.Equal(t, []string{"2024-01-01"}, bucketKeys("2024-01-01", "2024-01-07", enum.GranularityWeek))
	assert.Equal(t, []string{"2024-01-01", "2024-02-01"}, bucketKeys("2024-01-03", "2024-02-02", enum.GranularityMonth))
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01"}, bucketKeys("2024-01-30", "2024-02-01", enum.GranularityDay))
}

func TestEnumerateBuckets_SingleDay(t *testing.T) {
	for _, g := range []enum.Granularity{enum.GranularityDay, enum.GranularityWeek, enum.GranularityMonth} {
		keys := bucketKeys("2024-06-12", "2024-06-12", g)
		require.Len(t, keys, 1, g)
		assert.Equal(t, BucketKey(BucketStart(date("2024-06-12"), g)), keys[0])
	}
}

func TestEnumerateBuckets_ContiguousAndCovering(t *testing.T) {
	from, to := date("2023-11-15"), date("2024-03-10")
	for _, g := range []enum.Granularity{enum.GranularityDay, enum.GranularityWeek, enum.GranularityMonth} {
		starts := slices.Collect(EnumerateBuckets(from, to, g))
		require.NotEmpty(t, starts)

		assert.Equal(t, BucketStart(from, g), starts[0], g)
		assert.False(t, starts[len(starts)-1].After(to), g)
		assert.True(t, NextBucket(starts[len(starts)-1], g).After(to), g)

		for i := 1; i < len(starts); i++ {
			assert.Equal(t, NextBucket(starts[i-1], g), starts[i], g)
		}

		// every day in the range maps to an enumerated bucket
		keys := make(map[string]bool, len(starts))
		for _, s := range starts {
			keys[BucketKey(s)] = true
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			assert.True(t, keys[BucketKey(BucketStart(d, g))], "%s %s", g, d)
		}
	}
}

func TestEnumerateBuckets_Restartable(t *testing.T) {
	seq := EnumerateBuckets(date("2024-01-01"), date("2024-01-05"), enum.GranularityDay)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Len(t, first, 5)
	assert.Equal(t, first, second)

	// stopping early is honoured
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
