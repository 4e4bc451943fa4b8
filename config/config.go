package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents service configuration for pxingest
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	DefaultRequestTimeout      time.Duration `envconfig:"DEFAULT_REQUEST_TIMEOUT"`
	KafkaAddr                  []string      `envconfig:"KAFKA_ADDR"                  json:"-"`
	KafkaVersion               string        `envconfig:"KAFKA_VERSION"`
	KafkaOffsetOldest          bool          `envconfig:"KAFKA_OFFSET_OLDEST"`
	KafkaNumWorkers            int           `envconfig:"KAFKA_NUM_WORKERS"`
	StopConsumingOnUnhealthy   bool          `envconfig:"STOP_CONSUMING_ON_UNHEALTHY"`
	TableIngestGroup           string        `envconfig:"TABLE_INGEST_GROUP"`
	TableIngestTopic           string        `envconfig:"TABLE_INGEST_TOPIC"`
	ObservationsImportedTopic  string        `envconfig:"OBSERVATIONS_IMPORTED_TOPIC"`
	PxWebURL                   string        `envconfig:"PXWEB_URL"`
	DefaultMaxPeriods          int           `envconfig:"DEFAULT_MAX_PERIODS"`
	AWSRegion                  string        `envconfig:"AWS_REGION"`
	UploadBucketName           string        `envconfig:"UPLOAD_BUCKET_NAME"`
	CSVExportEnabled           bool          `envconfig:"CSV_EXPORT_ENABLED"`
	LocalObjectStore           string        `envconfig:"LOCAL_OBJECT_STORE"`
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":27300",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		DefaultRequestTimeout:      10 * time.Second,
		KafkaAddr:                  []string{"localhost:9092"},
		KafkaVersion:               "1.0.2",
		KafkaOffsetOldest:          true,
		KafkaNumWorkers:            1,
		StopConsumingOnUnhealthy:   true,
		TableIngestGroup:           "pxingest",
		TableIngestTopic:           "statistical-table-ingest",
		ObservationsImportedTopic:  "statistical-observations-imported",
		PxWebURL:                   "https://statfin.stat.fi/PXWeb/api/v1",
		DefaultMaxPeriods:          0,
		AWSRegion:                  "eu-west-1",
		UploadBucketName:           "pxingest-csv-exports",
		CSVExportEnabled:           false,
		LocalObjectStore:           "",
	}

	return cfg, envconfig.Process("", cfg)
}
