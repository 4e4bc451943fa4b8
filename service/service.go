package service

import (
	"context"
	"errors"
	"fmt"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	"github.com/samimiettinen/pxingest/config"
	"github.com/samimiettinen/pxingest/handler"
)

// Service contains all the configs, server and clients to run the event
// handler service
type Service struct {
	Cfg              *config.Config
	Server           HTTPServer
	HealthCheck      HealthChecker
	Consumer         kafka.IConsumerGroup
	Producer         kafka.IProducer
	PxWebClient      PxWebClient
	ObservationStore ObservationStore
	S3Uploader       S3Uploader
	Generator        Generator
}

func New() *Service {
	return &Service{}
}

// Init initialises the service and it's dependencies
func (svc *Service) Init(ctx context.Context, cfg *config.Config, buildTime, gitCommit, version string) error {
	var err error

	if cfg == nil {
		return errors.New("nil config passed to service init")
	}

	svc.Cfg = cfg

	if svc.Consumer, err = GetKafkaConsumer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create kafka consumer: %w", err)
	}
	if svc.Producer, err = GetKafkaProducer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}
	if svc.S3Uploader, err = GetS3Uploader(cfg); err != nil {
		return fmt.Errorf("failed to initialise s3 uploader: %w", err)
	}

	svc.PxWebClient = GetPxWebClient(cfg)
	svc.ObservationStore = GetObservationStore(cfg)
	svc.Generator = GetGenerator()

	if err := svc.Consumer.RegisterHandler(ctx, handler.NewTableIngest(
		*svc.Cfg,
		svc.PxWebClient,
		svc.ObservationStore,
		svc.S3Uploader,
		svc.Producer,
		svc.Generator,
	).Handle); err != nil {
		return fmt.Errorf("could not register kafka handler: %w", err)
	}

	if svc.HealthCheck, err = GetHealthCheck(cfg, buildTime, gitCommit, version); err != nil {
		return fmt.Errorf("could not instantiate healthcheck: %w", err)
	}

	if err := svc.registerCheckers(ctx); err != nil {
		return fmt.Errorf("error initialising checkers: %w", err)
	}

	r := mux.NewRouter()
	r.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)
	svc.Server = GetHTTPServer(cfg.BindAddr, r)

	return nil
}

// Start the service
func (svc *Service) Start(ctx context.Context, svcErrors chan error) error {
	log.Info(ctx, "starting service")

	// Kafka error logging go-routines
	svc.Consumer.LogErrors(ctx)
	svc.Producer.LogErrors(ctx)

	// If the consumer is not subscribed to the healthcheck library, start
	// consuming straight away
	if !svc.Cfg.StopConsumingOnUnhealthy {
		if err := svc.Consumer.Start(); err != nil {
			return fmt.Errorf("consumer failed to start: %w", err)
		}
	}

	svc.HealthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- fmt.Errorf("failure in http listen and serve: %w", err)
		}
	}()

	return nil
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Cfg.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop consuming first: the event loops drain and no more messages
		// will be processed
		if svc.Consumer != nil {
			if err := svc.Consumer.StopAndWait(); err != nil {
				log.Error(ctx, "error stopping kafka consumer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "stopped kafka consumer")
			}
		}

		// stop healthcheck, as it depends on everything else
		if svc.HealthCheck != nil {
			svc.HealthCheck.Stop()
			log.Info(ctx, "stopped health checker")
		}

		// stop any incoming requests before closing any outbound connections
		if svc.Server != nil {
			if err := svc.Server.Shutdown(ctx); err != nil {
				log.Error(ctx, "failed to shutdown http server", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "stopped http server")
			}
		}

		if svc.Consumer != nil {
			if err := svc.Consumer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka consumer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "closed kafka consumer")
			}
		}

		if svc.Producer != nil {
			if err := svc.Producer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka producer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "closed kafka producer")
			}
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the service clients to the health
// check object, and subscribes the kafka consumer to the downstream checks so
// that it stops consuming while any of them is unhealthy
func (svc *Service) registerCheckers(ctx context.Context) error {
	if _, err := svc.HealthCheck.AddAndGetCheck("Kafka consumer", svc.Consumer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka consumer: %w", err)
	}

	if _, err := svc.HealthCheck.AddAndGetCheck("Kafka producer", svc.Producer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka producer: %w", err)
	}

	checkPxWeb, err := svc.HealthCheck.AddAndGetCheck("PxWeb client", svc.PxWebClient.Checker)
	if err != nil {
		return fmt.Errorf("error adding check for pxweb client: %w", err)
	}

	checkStore, err := svc.HealthCheck.AddAndGetCheck("Observation store", svc.ObservationStore.Checker)
	if err != nil {
		return fmt.Errorf("error adding check for observation store: %w", err)
	}

	checkS3, err := svc.HealthCheck.AddAndGetCheck("S3 uploader", svc.S3Uploader.Checker)
	if err != nil {
		return fmt.Errorf("error adding check for s3 uploader: %w", err)
	}

	if svc.Cfg.StopConsumingOnUnhealthy {
		svc.HealthCheck.Subscribe(svc.Consumer, checkPxWeb, checkStore, checkS3)
	}

	return nil
}
