package wttr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/internal/infrastructure/wttr"
)

const sampleReport = `{
	"current_condition": [
		{
			"temp_C": "11",
			"FeelsLikeC": "9",
			"humidity": "71",
			"weatherDesc": [{"value": "Partly cloudy"}]
		}
	]
}`

func TestClientCurrent(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("parses the current conditions", func(t *testing.T) {
		var gotPath, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleReport))
		}))
		defer server.Close()

		client := wttr.NewClient(logger, wttr.WithBaseURL(server.URL))

		cond, err := client.Current(ctx, "London")

		assert.NoError(t, err)
		assert.Equal(t, "/London", gotPath)
		assert.Equal(t, "format=j1", gotQuery)
		assert.Equal(t, "11", cond.TempC)
		assert.Equal(t, "9", cond.FeelsLikeC)
		assert.Equal(t, "71", cond.Humidity)
		assert.Equal(t, "Partly cloudy", cond.Text())
	})

	t.Run("empty city is rejected without a request", func(t *testing.T) {
		client := wttr.NewClient(logger)

		_, err := client.Current(ctx, "")

		assert.EqualError(t, err, "city must not be empty")
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := wttr.NewClient(logger, wttr.WithBaseURL(server.URL))

		_, err := client.Current(ctx, "London")

		assert.EqualError(t, err, "wttr.in returned status 503")
	})

	t.Run("report without conditions is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"current_condition": []}`))
		}))
		defer server.Close()

		client := wttr.NewClient(logger, wttr.WithBaseURL(server.URL))

		_, err := client.Current(ctx, "Nowhere")

		assert.EqualError(t, err, `no weather report for "Nowhere"`)
	})

	t.Run("invalid payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := wttr.NewClient(logger, wttr.WithBaseURL(server.URL))

		_, err := client.Current(ctx, "London")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode weather report")
	})
}
