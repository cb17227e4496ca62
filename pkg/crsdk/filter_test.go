package crsdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuditRangeFilterShape(t *testing.T) {
	t.Parallel()

	dr := DateRange{
		Begin: time.Date(2026, time.July, 29, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.August, 28, 14, 30, 45, 123_000_000, time.UTC),
	}

	body, err := json.Marshal(AuditRangeFilter(dr))
	require.NoError(t, err)

	require.JSONEq(t, `{
		"sort": [{"field": "createdOn", "direction": "desc"}],
		"filter": {
			"operator": "and",
			"operands": [
				{"operator": "gt", "field": "createdOn", "value": "2026-07-29T00:00:00.000Z"},
				{"operator": "lt", "field": "createdOn", "value": "2026-08-28T14:30:45.123Z"}
			]
		},
		"page": {"length": 1000, "offset": 0}
	}`, string(body))
}

func TestAuditRangeFilterOperandOrder(t *testing.T) {
	t.Parallel()

	dr := DateRange{
		Begin: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.January, 31, 23, 59, 59, 999_000_000, time.UTC),
	}

	fb := AuditRangeFilter(dr)
	require.Len(t, fb.Filter.Operands, 2)

	// Lower bound first, upper bound second. Some Control Room builds
	// evaluate operands positionally.
	require.Equal(t, "gt", fb.Filter.Operands[0].Operator)
	require.Equal(t, dr.BeginString(LayoutMillis), fb.Filter.Operands[0].Value)
	require.Equal(t, "lt", fb.Filter.Operands[1].Operator)
	require.Equal(t, dr.EndString(LayoutMillis), fb.Filter.Operands[1].Value)
}

func TestEmptyFilterBodySerializesToEmptyObject(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(FilterBody{})
	require.NoError(t, err)
	require.Equal(t, "{}", string(body))
}
