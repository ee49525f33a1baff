package weather

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL, apiKey string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	client := NewClient(apiKey, 2*time.Second, logger)
	if serverURL != "" {
		client.baseURL = serverURL
	}
	return client
}

func TestCurrentRainfall_ParsesRainObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "13.0827", r.URL.Query().Get("lat"))
		assert.Equal(t, "80.2707", r.URL.Query().Get("lon"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"main":"Rain"}],"rain":{"1h":12.7},"main":{"temp":28.5}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	rainfall, err := client.CurrentRainfall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.7, rainfall)
}

func TestCurrentRainfall_DryWeatherHasNoRainObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":31.0}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	rainfall, err := client.CurrentRainfall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, rainfall)
}

func TestCurrentRainfall_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "bad-key")
	_, err := client.CurrentRainfall(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCurrentRainfall_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	_, err := client.CurrentRainfall(context.Background())
	require.Error(t, err)
}

func TestCurrentRainfall_MissingAPIKey(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	rainfall, err := client.CurrentRainfall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, rainfall)
	assert.False(t, requested, "no request should be made without an API key")
}
