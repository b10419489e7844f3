package client

import (
	"context"

	"floodwatch-cli/pkg/models"
)

// GetHealth checks the backend, sensor, and indicator-light status.
func (c *Client) GetHealth(ctx context.Context) (*models.Health, error) {
	var respData models.Health

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/health")

	if err := checkResponse(resp, err, "failed to get health"); err != nil {
		return nil, err
	}

	return &respData, nil
}
