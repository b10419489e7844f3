package client

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"floodwatch-cli/internal/stats"
	"floodwatch-cli/pkg/models"
)

// GetDashboardStats fetches the server-computed dashboard view-model.
func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var respData models.DashboardStats

	resp, err := c.sensor.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/dashboard/stats")

	if err := checkResponse(resp, err, "failed to get dashboard stats"); err != nil {
		return nil, err
	}

	return &respData, nil
}

// ComposeDashboardStats builds the same view-model client-side from the raw
// collections, for deployments whose backend lacks /dashboard/stats. The
// three list calls run concurrently and the aggregation waits for all of
// them: join semantics, any completion order, first error wins.
func (c *Client) ComposeDashboardStats(ctx context.Context, t stats.Thresholds) (*models.DashboardStats, error) {
	var (
		logs     *models.LogListResponse
		areas    []models.PinnedLocation
		readings *models.SensorReadingListResponse
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		logs, err = c.GetLogs(ctx, LogFilter{})
		return err
	})
	g.Go(func() (err error) {
		areas, err = c.GetPinnedAreas(ctx)
		return err
	})
	g.Go(func() (err error) {
		readings, err = c.GetSensorReadings(ctx, LogFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	composed := stats.Aggregate(logs.Logs, areas, readings.Readings, time.Now(), t)
	return &composed, nil
}
