package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/samimiettinen/pxingest/config"
	"github.com/samimiettinen/pxingest/event"
	"github.com/samimiettinen/pxingest/pxtable"
	"github.com/samimiettinen/pxingest/schema"
)

// TableIngest is the handler for the TableIngest event: it fetches one
// statistical table from the provider, flattens it into observations and
// persists them. A failure aborts this table only; sibling tables on other
// workers are unaffected.
type TableIngest struct {
	cfg       config.Config
	pxweb     PxWebClient
	store     ObservationStore
	s3        S3Uploader
	producer  kafka.IProducer
	generator Generator
}

// NewTableIngest creates a new TableIngest handler
func NewTableIngest(cfg config.Config, c PxWebClient, s ObservationStore, u S3Uploader, p kafka.IProducer, g Generator) *TableIngest {
	return &TableIngest{
		cfg:       cfg,
		pxweb:     c,
		store:     s,
		s3:        u,
		producer:  p,
		generator: g,
	}
}

// Handle takes a single event.
func (h *TableIngest) Handle(ctx context.Context, workerID int, msg kafka.Message) error {
	e := &event.TableIngest{}
	s := schema.TableIngest

	if err := s.Unmarshal(msg.GetData(), e); err != nil {
		return &Error{
			err: fmt.Errorf("failed to unmarshal event: %w", err),
			logData: map[string]interface{}{
				"msg_data": msg.GetData(),
			},
		}
	}

	logData := log.Data{"event": e, "worker_id": workerID}
	log.Info(ctx, "event received", logData)

	if err := h.validateEvent(e); err != nil {
		return fmt.Errorf("failed to validate event: %w", err)
	}

	metadata, err := h.pxweb.GetMetadata(ctx, e.TablePath)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to get table metadata: %w", err),
			logData: logData,
		}
	}

	log.Info(ctx, "table metadata obtained from pxweb", log.Data{
		"table_id":  e.TableID,
		"title":     metadata.Title,
		"variables": len(metadata.Variables),
	})

	maxPeriods := int(e.MaxPeriods)
	if maxPeriods == 0 {
		maxPeriods = h.cfg.DefaultMaxPeriods
	}
	selection := pxtable.BuildQuery(metadata, &pxtable.Filters{MaxPeriods: maxPeriods})
	logData["selection"] = selection

	resp, err := h.pxweb.GetData(ctx, e.TablePath, selection)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to get table data: %w", err),
			logData: logData,
		}
	}

	rows, err := h.FlattenResponse(resp, metadata)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to flatten table data: %w", err),
			logData: logData,
		}
	}

	obs := pxtable.Observations(e.SeriesID, rows)
	if err := h.store.UpsertObservations(ctx, obs); err != nil {
		return &Error{
			err:     fmt.Errorf("failed to upsert observations: %w", err),
			logData: logData,
		}
	}

	log.Info(ctx, "observations stored", log.Data{
		"table_id":     e.TableID,
		"series_id":    e.SeriesID,
		"observations": len(obs),
	})

	var csvURL string
	if h.cfg.CSVExportEnabled {
		if csvURL, err = h.UploadCSVFile(ctx, e, rows, metadata, resp); err != nil {
			return &Error{
				err:     fmt.Errorf("failed to upload .csv file to S3 bucket: %w", err),
				logData: logData,
			}
		}
	}

	if err := h.ProduceImportedEvent(e, int32(len(obs)), csvURL); err != nil {
		return fmt.Errorf("failed to produce observations-imported kafka message: %w", err)
	}
	return nil
}

func (h *TableIngest) validateEvent(e *event.TableIngest) error {
	if e.TablePath == "" {
		return &Error{
			err:     errors.New("empty table path not allowed"),
			logData: log.Data{"table_id": e.TableID},
		}
	}
	if e.SeriesID == "" {
		return &Error{
			err:     errors.New("empty series id not allowed"),
			logData: log.Data{"table_id": e.TableID},
		}
	}
	return nil
}

// FlattenResponse converts a provider response into canonical rows. Sparse
// responses are flattened against the table metadata; dense JSON-stat2
// responses are self-describing and flattened against their own dimension
// block, since a query selection narrows the value lists the positional
// indices refer to.
func (h *TableIngest) FlattenResponse(resp *pxtable.ProviderResponse, metadata *pxtable.TableMetadata) ([]pxtable.Row, error) {
	if resp == nil {
		return nil, errors.New("nil provider response")
	}
	if resp.Dense != nil {
		return resp.Flatten(nil)
	}
	return resp.Flatten(metadata)
}

// UploadCSVFile serializes the flattened rows to CSV and uploads the file to
// the S3 bucket, returning the S3 URL. For dense responses the dataset's own
// metadata names the columns.
func (h *TableIngest) UploadCSVFile(ctx context.Context, e *event.TableIngest, rows []pxtable.Row, metadata *pxtable.TableMetadata, resp *pxtable.ProviderResponse) (string, error) {
	if resp != nil && resp.Dense != nil {
		m, err := resp.Dense.Metadata()
		if err != nil {
			return "", err
		}
		metadata = m
	}

	body, err := pxtable.ToCSV(rows, metadata, nil)
	if err != nil {
		return "", fmt.Errorf("failed to serialize csv: %w", err)
	}

	filename, err := h.generateS3Filename(e)
	if err != nil {
		return "", err
	}

	bucketName := h.s3.BucketName()
	logData := log.Data{
		"filename": filename,
		"bucket":   bucketName,
	}
	log.Info(ctx, "uploading csv file to S3", logData)

	result, err := h.s3.UploadWithContext(ctx, &s3manager.UploadInput{
		Body:   strings.NewReader(body),
		Bucket: &bucketName,
		Key:    &filename,
	})
	if err != nil {
		return "", NewError(
			fmt.Errorf("failed to upload csv file to S3: %w", err),
			logData,
		)
	}
	return result.Location, nil
}

// ProduceImportedEvent sends the final kafka message signifying the import
// is complete
func (h *TableIngest) ProduceImportedEvent(e *event.TableIngest, rowCount int32, csvURL string) error {
	if err := h.producer.Send(schema.ObservationsImported, &event.ObservationsImported{
		TableID:  e.TableID,
		SeriesID: e.SeriesID,
		RowCount: rowCount,
		CSVURL:   csvURL,
	}); err != nil {
		return fmt.Errorf("error sending observations-imported event: %w", err)
	}
	return nil
}

// generateS3Filename generates the S3 key (filename including `subpaths`
// after the bucket) for the provided table
func (h *TableIngest) generateS3Filename(e *event.TableIngest) (string, error) {
	id, err := h.generator.UniqueID()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tables/%s-%s.csv", e.TableID, id), nil
}
