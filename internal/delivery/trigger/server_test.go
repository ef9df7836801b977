package trigger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"attic/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeWithAuth(t *testing.T, cfg *config.Config, authHeader string) (int, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jobs/ingestion", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := bearerAuth(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	return rec.Code, err
}

func TestBearerAuth(t *testing.T) {
	secured := &config.Config{Trigger: &config.TriggerConfig{AuthToken: "scheduler-secret"}}

	t.Run("valid token passes", func(t *testing.T) {
		code, err := invokeWithAuth(t, secured, "Bearer scheduler-secret")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		_, err := invokeWithAuth(t, secured, "Bearer wrong")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		_, err := invokeWithAuth(t, secured, "")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		_, err := invokeWithAuth(t, secured, "Basic c2NoZWR1bGVyLXNlY3JldA==")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("empty configured token disables the check", func(t *testing.T) {
		open := &config.Config{Trigger: &config.TriggerConfig{}}

		code, err := invokeWithAuth(t, open, "")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
	})
}
