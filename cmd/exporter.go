package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"floodwatch-cli/internal/client"
	"floodwatch-cli/internal/config"
	"floodwatch-cli/internal/stats"
	"floodwatch-cli/pkg/models"
)

// Variables to hold flag values
var (
	expHost       string
	expAuthHost   string
	expPort       string
	expCompose    bool
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.Client
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &FloodCollector{
		Client:     p.api,
		Compose:    expCompose,
		Thresholds: thresholds(),
	}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Floodwatch Exporter listening on %s", addr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

type FloodCollector struct {
	Client     *client.Client
	Compose    bool
	Thresholds stats.Thresholds
	Mutex      sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"floodwatch_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"floodwatch_scrape_duration_seconds", "Time taken to scrape the backend.", nil, nil,
	)
	sensorGoodDesc = prometheus.NewDesc(
		"floodwatch_sensor_good", "Sensor health (1.0=online, 0.5=stale, 0.0=offline/error).", []string{"status"}, nil,
	)
	waterLevelDesc = prometheus.NewDesc(
		"floodwatch_water_level_cm", "Water level from the latest reading.", nil, nil,
	)
	distanceDesc = prometheus.NewDesc(
		"floodwatch_sensor_distance_cm", "Raw distance from the latest reading.", nil, nil,
	)
	logsCountDesc = prometheus.NewDesc(
		"floodwatch_logs_total", "Total logs grouped by type.", []string{"type"}, nil,
	)
	logsRecentDesc = prometheus.NewDesc(
		"floodwatch_logs_last24h", "Logs recorded in the last 24 hours.", nil, nil,
	)
	pinnedCountDesc = prometheus.NewDesc(
		"floodwatch_pinned_areas_total", "Number of pinned areas.", nil, nil,
	)
	readingsCountDesc = prometheus.NewDesc(
		"floodwatch_sensor_readings_total", "Number of stored sensor readings.", nil, nil,
	)
)

func (c *FloodCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- sensorGoodDesc
	ch <- waterLevelDesc
	ch <- distanceDesc
	ch <- logsCountDesc
	ch <- logsRecentDesc
	ch <- pinnedCountDesc
	ch <- readingsCountDesc
}

func statusValue(status string) float64 {
	switch status {
	case models.SensorOnline:
		return 1.0
	case models.SensorStale:
		return 0.5
	default:
		return 0.0
	}
}

func (c *FloodCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0
	ctx := context.Background()

	var dash *models.DashboardStats
	var err error
	if c.Compose {
		dash, err = c.Client.ComposeDashboardStats(ctx, c.Thresholds)
	} else {
		dash, err = c.Client.GetDashboardStats(ctx)
	}

	if err != nil {
		success = 0.0
		log.Printf("Error scraping dashboard stats: %v", err)
	} else {
		st := dash.SensorStatus
		ch <- prometheus.MustNewConstMetric(sensorGoodDesc, prometheus.GaugeValue, statusValue(st.Status), st.Status)

		if latest := dash.Recent.LatestSensorReading; latest != nil {
			if latest.WaterLevelCm != nil {
				ch <- prometheus.MustNewConstMetric(waterLevelDesc, prometheus.GaugeValue, *latest.WaterLevelCm)
			}
			if latest.Distance != nil {
				ch <- prometheus.MustNewConstMetric(distanceDesc, prometheus.GaugeValue, *latest.Distance)
			}
		}

		ch <- prometheus.MustNewConstMetric(logsCountDesc, prometheus.GaugeValue, float64(dash.LogTypes.Sensor), models.LogTypeSensor)
		ch <- prometheus.MustNewConstMetric(logsCountDesc, prometheus.GaugeValue, float64(dash.LogTypes.UserAction), models.LogTypeUserAction)
		ch <- prometheus.MustNewConstMetric(logsCountDesc, prometheus.GaugeValue, float64(dash.LogTypes.SystemEvent), models.LogTypeSystemEvent)
		ch <- prometheus.MustNewConstMetric(logsRecentDesc, prometheus.GaugeValue, float64(dash.Recent.LogsLast24h))
		ch <- prometheus.MustNewConstMetric(pinnedCountDesc, prometheus.GaugeValue, float64(dash.Totals.PinnedAreas))
		ch <- prometheus.MustNewConstMetric(readingsCountDesc, prometheus.GaugeValue, float64(dash.Totals.SensorReadings))
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes flood-monitoring metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Setup Client Config
		hostClean := strings.TrimRight(expHost, "/")
		if hostClean == "" {
			hostClean = config.SensorBaseURL()
		}
		if hostClean == "" {
			log.Fatal("Error: You must provide --host or configure sensor_base_url.")
		}

		cfg := client.ClientConfig{
			SensorBaseURL: hostClean,
			AuthBaseURL:   strings.TrimRight(expAuthHost, "/"),
			Tokens:        config.TokenStore{},
		}

		// 2. Define Service Configuration
		svcConfig := &service.Config{
			Name:        "floodwatch-exporter",
			DisplayName: "Floodwatch Prometheus Exporter",
			Description: "Exposes flood-monitoring metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--host", hostClean,
				"--port", expPort,
			},
		}
		if expCompose {
			svcConfig.Arguments = append(svcConfig.Arguments, "--compose")
		}

		prg := &program{
			api: client.New(cfg),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// 3. Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// 4. Run the Service (Blocking)
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVar(&expHost, "host", "", "API Base URL (defaults to stored sensor_base_url)")
	exporterCmd.Flags().StringVar(&expAuthHost, "auth-host", "", "Identity backend URL (optional)")
	exporterCmd.Flags().StringVar(&expPort, "port", "9822", "Port to listen on")
	exporterCmd.Flags().BoolVar(&expCompose, "compose", false, "Aggregate stats client-side instead of GET /dashboard/stats")

	// Flag for Service Control
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
