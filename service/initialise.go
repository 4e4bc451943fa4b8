package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	dps3 "github.com/ONSdigital/dp-s3/v2"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/samimiettinen/pxingest/config"
	"github.com/samimiettinen/pxingest/generator"
	"github.com/samimiettinen/pxingest/pxweb"
	"github.com/samimiettinen/pxingest/store"
)

// GetHTTPServer creates an http server
var GetHTTPServer = func(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// GetKafkaConsumer creates a Kafka consumer
var GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
	kafkaOffset := kafka.OffsetNewest
	if cfg.KafkaOffsetOldest {
		kafkaOffset = kafka.OffsetOldest
	}

	return kafka.NewConsumerGroup(
		ctx,
		&kafka.ConsumerGroupConfig{
			BrokerAddrs:  cfg.KafkaAddr,
			Topic:        cfg.TableIngestTopic,
			GroupName:    cfg.TableIngestGroup,
			KafkaVersion: &cfg.KafkaVersion,
			Offset:       &kafkaOffset,
			NumWorkers:   &cfg.KafkaNumWorkers,
		},
	)
}

// GetKafkaProducer creates a Kafka producer
var GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
	return kafka.NewProducer(
		ctx,
		&kafka.ProducerConfig{
			BrokerAddrs:  cfg.KafkaAddr,
			Topic:        cfg.ObservationsImportedTopic,
			KafkaVersion: &cfg.KafkaVersion,
		},
	)
}

// GetPxWebClient gets and initialises the PxWeb API client
var GetPxWebClient = func(cfg *config.Config) PxWebClient {
	return pxweb.New(cfg.PxWebURL)
}

// GetObservationStore creates the observation store
var GetObservationStore = func(cfg *config.Config) ObservationStore {
	return store.NewMemory()
}

// GetS3Uploader creates an S3 Uploader, or a local storage client if a
// non-empty LocalObjectStore is provided
var GetS3Uploader = func(cfg *config.Config) (S3Uploader, error) {
	if cfg.LocalObjectStore != "" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials("minio-access-key", "minio-secret-key", ""),
			Endpoint:         aws.String(cfg.LocalObjectStore),
			Region:           aws.String(cfg.AWSRegion),
			DisableSSL:       aws.Bool(true),
			S3ForcePathStyle: aws.Bool(true),
		}

		s, err := session.NewSession(s3Config)
		if err != nil {
			return nil, fmt.Errorf("failed to create aws session: %w", err)
		}
		return dps3.NewClientWithSession(cfg.UploadBucketName, s), nil
	}

	uploader, err := dps3.NewClient(cfg.AWSRegion, cfg.UploadBucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 Client: %w", err)
	}

	return uploader, nil
}

// GetGenerator gets and initialises the string Generator
var GetGenerator = func() Generator {
	return generator.New()
}

// GetHealthCheck creates a healthcheck with versionInfo
var GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, fmt.Errorf("failed to get version info: %w", err)
	}

	hc := healthcheck.New(
		versionInfo,
		cfg.HealthCheckCriticalTimeout,
		cfg.HealthCheckInterval,
	)
	return &hc, nil
}
