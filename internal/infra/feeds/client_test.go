package feeds

import (
	"testing"
	"time"

	"attic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedTestConfig points every adapter at the given test server.
func feedTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Feeds: &config.FeedsConfig{
			UserAgent:      "AtticRecallBot/test",
			RequestTimeout: 5 * time.Second,
			Window:         7 * 24 * time.Hour,
			CPSC:           config.FeedEndpoint{BaseURL: baseURL},
			FDA:            config.FeedEndpoint{BaseURL: baseURL},
			USDA:           config.FeedEndpoint{BaseURL: baseURL},
			NHTSA:          config.NHTSAConfig{BaseURL: baseURL, MaxConcurrent: 4},
		},
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "date only", raw: "2026-08-21", want: "2026-08-21"},
		{name: "timestamp prefixed", raw: "2026-08-21T00:00:00.000", want: "2026-08-21"},
		{name: "rfc3339", raw: "2026-08-21T12:30:00Z", want: "2026-08-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFlexibleDate(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}

	t.Run("unparseable", func(t *testing.T) {
		assert.Nil(t, parseFlexibleDate(""))
		assert.Nil(t, parseFlexibleDate("August 21, 2026"))
		assert.Nil(t, parseFlexibleDate("21/08/26"))
	})
}

func TestStrPtr(t *testing.T) {
	assert.Nil(t, strPtr(""))
	require.NotNil(t, strPtr("x"))
	assert.Equal(t, "x", *strPtr("x"))
}
