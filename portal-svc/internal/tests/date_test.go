package tests

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalBackendFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "rfc3339", raw: `"2024-05-01T10:30:00Z"`, want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{name: "date only", raw: `"2024-05-01"`, want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc1123", raw: `"Wed, 01 May 2024 10:30:00 GMT"`, want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{name: "iso without zone", raw: `"2024-05-01T10:30:00.123456"`, want: time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)},
		{name: "null", raw: `null`},
		{name: "empty", raw: `""`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var d domain.Date
			require.NoError(t, json.Unmarshal([]byte(testCase.raw), &d))
			assert.True(t, testCase.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_RejectsGarbage(t *testing.T) {
	var d domain.Date
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
}

func TestBill_DecodesMixedDateFormats(t *testing.T) {
	payload := `[
		{"id": 1, "bill_date": "2024-05-01", "created_at": "Wed, 01 May 2024 10:30:00 GMT", "bill_status": "sent", "total_amount": 120},
		{"id": 2, "bill_date": "2024-05-02T08:00:00Z", "due_date": "2024-06-01", "bill_status": "paid", "amount": "80.50"}
	]`

	var bills []domain.Bill
	require.NoError(t, json.Unmarshal([]byte(payload), &bills))

	require.Len(t, bills, 2)
	assert.Equal(t, "2024-05-01", bills[0].BillDate.Format("2006-01-02"))
	assert.Equal(t, 10, bills[0].CreatedAt.Hour())
	assert.Nil(t, bills[0].DueDate)
	require.NotNil(t, bills[1].DueDate)
	assert.Equal(t, time.June, bills[1].DueDate.Month())
}

func TestOrder_DecodesRFC1123OrderDate(t *testing.T) {
	var orders []domain.Order
	err := json.Unmarshal([]byte(`[{"order_id": 7, "order_date": "Thu, 02 May 2024 09:15:00 GMT", "status": "pending"}]`), &orders)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].OrderDate.Day())
}

func TestDate_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(domain.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-05-01T00:00:00Z"`, string(out))

	out, err = json.Marshal(domain.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
