package client

import (
	"context"

	"floodwatch-cli/pkg/models"
)

// GetSensorReadings fetches the paginated reading stream, filtered the same
// way as logs (type is ignored server-side for readings).
func (c *Client) GetSensorReadings(ctx context.Context, filter LogFilter) (*models.SensorReadingListResponse, error) {
	var respData models.SensorReadingListResponse

	params := map[string]string{}
	filter.apply(params)

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&respData).
		Get("/sensor-readings")

	if err := checkResponse(resp, err, "failed to get sensor readings"); err != nil {
		return nil, err
	}

	return &respData, nil
}

// GetLatestSensorReading returns the most recent reading. An empty stream is
// a NotFoundError, not an empty value.
func (c *Client) GetLatestSensorReading(ctx context.Context) (*models.SensorReading, error) {
	var respData models.SensorReading

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/sensor-readings/latest")

	if err := checkResponse(resp, err, "failed to get latest sensor reading"); err != nil {
		return nil, err
	}

	return &respData, nil
}
