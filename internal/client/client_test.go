package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"floodwatch-cli/internal/auth"
	"floodwatch-cli/internal/errors"
)

// newTestClient spins up an in-memory backend and a client bound to it.
func newTestClient(t *testing.T, handler http.Handler, tokens auth.TokenProvider) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(ClientConfig{
		SensorBaseURL: srv.URL,
		Tokens:        tokens,
	})
}

func TestTransportErrorCarriesStatusCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), nil)

	_, err := c.GetHealth(context.Background())

	assert.True(t, errors.IsTransport(err))
	apiErr := err.(*errors.APIError)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestNetworkFailureIsTransportErrorWithoutCode(t *testing.T) {
	// Nothing listens on this address.
	c := New(ClientConfig{SensorBaseURL: "http://127.0.0.1:1"})

	_, err := c.GetHealth(context.Background())

	assert.True(t, errors.IsTransport(err))
	assert.Zero(t, err.(*errors.APIError).StatusCode)
}

func TestBearerHeaderInjectedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","pollIntervalMs":5000,"timestamp":"2026-08-30T12:00:00Z","sensor":{},"led":{}}`))
	}), auth.StaticToken("jwt-abc"))

	_, err := c.GetHealth(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer jwt-abc", gotAuth)
}

func TestNoBearerHeaderWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","pollIntervalMs":5000,"timestamp":"2026-08-30T12:00:00Z","sensor":{},"led":{}}`))
	}), auth.StaticToken(""))

	_, err := c.GetHealth(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestSplitBackendRouting(t *testing.T) {
	var sensorHits, authHits int

	sensorSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sensorHits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logs":[],"pagination":{"total":0,"limit":50,"offset":0,"hasMore":false}}`))
	}))
	defer sensorSrv.Close()

	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer authSrv.Close()

	c := New(ClientConfig{
		SensorBaseURL: sensorSrv.URL,
		AuthBaseURL:   authSrv.URL,
	})

	_, err := c.GetLogs(context.Background(), LogFilter{})
	assert.NoError(t, err)
	_, err = c.GetUsers(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 1, sensorHits, "logs belong to the sensor backend")
	assert.Equal(t, 1, authHits, "users belong to the identity backend")
}

func TestSingleBackendServesBothFamilies(t *testing.T) {
	var hits int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}), nil)

	_, err := c.GetUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, hits)
}
