package client

import (
	"context"
	"strconv"

	"floodwatch-cli/internal/errors"
	"floodwatch-cli/pkg/models"
)

// LogFilter narrows GET /logs and GET /sensor-readings queries. Zero values
// mean "no filter"; Limit/Offset of 0 leave paging to the backend defaults.
type LogFilter struct {
	Type      string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

func (f LogFilter) apply(req map[string]string) {
	if f.Type != "" {
		req["type"] = f.Type
	}
	if f.StartDate != "" {
		req["startDate"] = f.StartDate
	}
	if f.EndDate != "" {
		req["endDate"] = f.EndDate
	}
	if f.Limit > 0 {
		req["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		req["offset"] = strconv.Itoa(f.Offset)
	}
}

// GetLogs fetches the paginated log list, optionally filtered.
func (c *Client) GetLogs(ctx context.Context, filter LogFilter) (*models.LogListResponse, error) {
	var respData models.LogListResponse

	params := map[string]string{}
	filter.apply(params)

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&respData).
		Get("/logs")

	if err := checkResponse(resp, err, "failed to get logs"); err != nil {
		return nil, err
	}

	return &respData, nil
}

// GetLog fetches a single log entry by id. 404 maps to NotFoundError.
func (c *Client) GetLog(ctx context.Context, id string) (*models.Log, error) {
	if id == "" {
		return nil, errors.NewValidationError("log id is required")
	}

	var respData models.Log

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/logs/" + id)

	if err := checkResponse(resp, err, "failed to get log "+id); err != nil {
		return nil, err
	}

	return &respData, nil
}

// ClearLogs deletes all logs and returns how many were removed.
func (c *Client) ClearLogs(ctx context.Context) (*models.ClearLogsResponse, error) {
	var respData models.ClearLogsResponse

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Delete("/logs")

	if err := checkResponse(resp, err, "failed to clear logs"); err != nil {
		return nil, err
	}

	return &respData, nil
}
