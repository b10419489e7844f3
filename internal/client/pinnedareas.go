package client

import (
	"context"

	"floodwatch-cli/internal/errors"
	"floodwatch-cli/pkg/models"
)

// GetPinnedAreas lists every pinned geographic area.
func (c *Client) GetPinnedAreas(ctx context.Context) ([]models.PinnedLocation, error) {
	var respData []models.PinnedLocation

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/pinned-areas")

	if err := checkResponse(resp, err, "failed to get pinned areas"); err != nil {
		return nil, err
	}

	return respData, nil
}

// GetPinnedArea fetches one pinned area by id.
func (c *Client) GetPinnedArea(ctx context.Context, id string) (*models.PinnedLocation, error) {
	if id == "" {
		return nil, errors.NewValidationError("pinned area id is required")
	}

	var respData models.PinnedLocation

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/pinned-areas/" + id)

	if err := checkResponse(resp, err, "failed to get pinned area "+id); err != nil {
		return nil, err
	}

	return &respData, nil
}

// CreatePinnedArea pins a new area. Latitude and longitude are required and
// checked locally: a request missing either is rejected before any network
// call happens.
func (c *Client) CreatePinnedArea(ctx context.Context, req models.CreatePinnedAreaRequest) (*models.PinnedLocation, error) {
	if req.Latitude == nil {
		return nil, errors.NewValidationError("latitude is required")
	}
	if req.Longitude == nil {
		return nil, errors.NewValidationError("longitude is required")
	}

	var respData models.PinnedLocation

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&respData).
		Post("/pinned-areas")

	if err := checkResponse(resp, err, "failed to create pinned area"); err != nil {
		return nil, err
	}

	return &respData, nil
}

// DeletePinnedArea removes a pinned area by id. Deleting an absent id
// surfaces the backend's NotFoundError; callers that want idempotent
// semantics can treat that as success.
func (c *Client) DeletePinnedArea(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("pinned area id is required")
	}

	resp, err := c.sensor.R().
		SetContext(ctx).
		Delete("/pinned-areas/" + id)

	return checkResponse(resp, err, "failed to delete pinned area "+id)
}
