package handler

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/samimiettinen/pxingest/pxtable"
)

//go:generate moq -out mock/pxweb-client.go -pkg mock . PxWebClient
//go:generate moq -out mock/store.go -pkg mock . ObservationStore
//go:generate moq -out mock/s3-uploader.go -pkg mock . S3Uploader
//go:generate moq -out mock/generator.go -pkg mock . Generator

// PxWebClient contains the required methods for the PxWeb API client
type PxWebClient interface {
	GetMetadata(ctx context.Context, tablePath string) (*pxtable.TableMetadata, error)
	GetData(ctx context.Context, tablePath string, selection pxtable.Selection) (*pxtable.ProviderResponse, error)
}

// ObservationStore contains the required methods for the observation store.
// UpsertObservations must be idempotent on the (series_id, date) key.
type ObservationStore interface {
	UpsertObservations(ctx context.Context, obs []pxtable.Observation) error
}

// S3Uploader contains the required methods for the S3 Uploader
type S3Uploader interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
	BucketName() string
}

// Generator contains methods for dynamically required strings and tokens
// e.g. UUIDs
type Generator interface {
	Timestamp() time.Time
	UniqueID() (string, error)
}
