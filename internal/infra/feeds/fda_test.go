package feeds

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"attic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestFDAAdapter_Fetch(t *testing.T) {
	windowStart := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/food/enforcement.json":
			w.Write([]byte(`{"results": [
				{
					"recall_number": "F-1234-2026",
					"recalling_firm": "Acme Foods",
					"product_description": "Frozen Spinach 12oz",
					"reason_for_recall": "Possible listeria contamination",
					"classification": "Class I",
					"recall_initiation_date": "20260825"
				},
				{
					"recall_number": "F-0001-2026",
					"recalling_firm": "Old Co",
					"product_description": "Outside the window",
					"recall_initiation_date": "20260101"
				},
				{
					"event_id": "98765",
					"recalling_firm": "No-Number Co",
					"product_description": "Record keyed by event id",
					"recall_initiation_date": "not-a-date"
				},
				{
					"recalling_firm": "Keyless Co",
					"product_description": "No stable identifier"
				}
			]}`))
		case "/drug/enforcement.json":
			w.WriteHeader(http.StatusInternalServerError)
		case "/device/enforcement.json":
			w.Write([]byte(`{"results": [
				{
					"recall_number": "Z-5555-2026",
					"recalling_firm": "MedTech Inc",
					"product_description": "Infusion pump",
					"code_info": "Lot 42A",
					"recall_initiation_date": "20260826"
				}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter := NewFDAAdapter(discardLogger(), server.Client(), feedTestConfig(server.URL))

	recalls, err := adapter.Fetch(context.Background(), windowStart)

	// The failed drug sub-feed is soft: the other two still contribute.
	require.NoError(t, err)
	require.Len(t, recalls, 3)

	byID := make(map[string]*entity.Recall, len(recalls))
	for _, r := range recalls {
		byID[r.ExternalID] = r
	}

	food := byID["FDA-F-1234-2026"]
	require.NotNil(t, food)
	assert.Equal(t, entity.SourceFDA, food.Source)
	assert.Equal(t, "Frozen Spinach 12oz", food.Title)
	require.NotNil(t, food.Hazard)
	assert.Equal(t, "Class I", *food.Hazard)
	require.Len(t, food.AffectedProducts, 1)
	assert.Equal(t, "Acme Foods", food.AffectedProducts[0].Brand)
	assert.Equal(t, entity.CategoryFood, food.AffectedProducts[0].Category)

	// Unparseable dates are kept rather than silently dropped.
	keyedByEvent := byID["FDA-98765"]
	require.NotNil(t, keyedByEvent)
	assert.Nil(t, keyedByEvent.RecallDate)

	device := byID["FDA-Z-5555-2026"]
	require.NotNil(t, device)
	require.NotNil(t, device.Hazard)
	assert.Equal(t, "Lot 42A", *device.Hazard)
	assert.Equal(t, entity.CategoryMedical, device.AffectedProducts[0].Category)

	assert.NotContains(t, byID, "FDA-F-0001-2026")
}

func TestFDAAdapter_Fetch_AllSubFeedsDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := NewFDAAdapter(discardLogger(), server.Client(), feedTestConfig(server.URL))

	recalls, err := adapter.Fetch(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, recalls)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", truncateString("abc", 5))
	assert.Equal(t, "abcde", truncateString("abcdefgh", 5))
	assert.Equal(t, "héllo", truncateString("héllo wörld", 5))
}
