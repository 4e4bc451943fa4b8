package service

import (
	"context"
	"net/http"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"

	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/samimiettinen/pxingest/pxtable"
)

//go:generate moq -out mock/server.go -pkg mock . HTTPServer
//go:generate moq -out mock/health_check.go -pkg mock . HealthChecker
//go:generate moq -out mock/pxweb_client.go -pkg mock . PxWebClient
//go:generate moq -out mock/store.go -pkg mock . ObservationStore
//go:generate moq -out mock/s3_uploader.go -pkg mock . S3Uploader
//go:generate moq -out mock/generator.go -pkg mock . Generator

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HealthChecker defines the required methods from Healthcheck
type HealthChecker interface {
	Handler(w http.ResponseWriter, req *http.Request)
	Start(ctx context.Context)
	Stop()
	AddAndGetCheck(name string, checker healthcheck.Checker) (check *healthcheck.Check, err error)
	Subscribe(s healthcheck.Subscriber, checks ...*healthcheck.Check)
}

// PxWebClient is the statistical table provider API client
type PxWebClient interface {
	GetMetadata(ctx context.Context, tablePath string) (*pxtable.TableMetadata, error)
	GetData(ctx context.Context, tablePath string, selection pxtable.Selection) (*pxtable.ProviderResponse, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// ObservationStore persists flattened observations
type ObservationStore interface {
	UpsertObservations(ctx context.Context, obs []pxtable.Observation) error
	GetObservations(ctx context.Context, seriesID string) ([]pxtable.Observation, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// S3Uploader uploads CSV exports to the S3 bucket
type S3Uploader interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
	BucketName() string
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// Generator contains methods for dynamically required strings and tokens
// e.g. UUIDs
type Generator interface {
	Timestamp() time.Time
	UniqueID() (string, error)
}
