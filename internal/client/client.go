package client

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"floodwatch-cli/internal/auth"
	"floodwatch-cli/internal/errors"
)

// Client is the typed data layer over the flood-monitoring backends. A
// deployment runs either one combined backend or a split pair (identity vs
// sensor/logs/areas); which resty instance serves which resource family is
// fixed here at construction, never chosen per call.
type Client struct {
	sensor *resty.Client // logs, pinned areas, sensor readings, dashboard, health
	auth   *resty.Client // auth, users
	Config ClientConfig
}

type ClientConfig struct {
	SensorBaseURL string
	AuthBaseURL   string // empty: identity shares the sensor backend
	Tokens        auth.TokenProvider
}

func New(cfg ClientConfig) *Client {
	sensor := newBackend(cfg.SensorBaseURL, cfg.Tokens)

	identity := sensor
	if cfg.AuthBaseURL != "" && cfg.AuthBaseURL != cfg.SensorBaseURL {
		identity = newBackend(cfg.AuthBaseURL, cfg.Tokens)
	}

	return &Client{
		sensor: sensor,
		auth:   identity,
		Config: cfg,
	}
}

func newBackend(baseURL string, tokens auth.TokenProvider) *resty.Client {
	r := resty.New()
	r.SetBaseURL(baseURL)

	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")

	// Bearer header is read fresh per request so a login/logout mid-session
	// takes effect without rebuilding the client.
	if tokens != nil {
		r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if t := tokens.Token(); t != "" {
				req.SetHeader("Authorization", "Bearer "+t)
			}
			return nil
		})
	}

	return r
}

// checkResponse maps a resty outcome onto the error taxonomy. No retries:
// every failure propagates to the caller unchanged.
func checkResponse(resp *resty.Response, err error, what string) error {
	if err != nil {
		return errors.NewTransportError(fmt.Sprintf("%s: %v", what, err), 0, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return errors.NewNotFoundError(fmt.Sprintf("%s: not found", what))
	}
	if resp.IsError() {
		return errors.NewTransportError(
			fmt.Sprintf("%s: %s", what, resp.String()),
			resp.StatusCode(),
			nil,
		)
	}
	return nil
}
