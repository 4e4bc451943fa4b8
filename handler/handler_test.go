package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ONSdigital/dp-kafka/v3/avro"
	"github.com/ONSdigital/dp-kafka/v3/kafkatest"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/samimiettinen/pxingest/config"
	"github.com/samimiettinen/pxingest/event"
	"github.com/samimiettinen/pxingest/handler"
	"github.com/samimiettinen/pxingest/handler/mock"
	"github.com/samimiettinen/pxingest/pxtable"
	"github.com/samimiettinen/pxingest/schema"
)

const (
	testBucket     = "test-bucket"
	testTableID    = "statfin-vtp-11tk"
	testTablePath  = "StatFin/vtp/statfin_vtp_pxt_11tk.px"
	testSeriesID   = "gdp"
	testS3Location = "s3://test-bucket/tables/statfin-vtp-11tk-uuid1.csv"
)

var (
	ctx      = context.Background()
	errPxWeb = errors.New("test pxweb error")
	errStore = errors.New("test store error")
	errKafka = errors.New("test kafka producer error")
)

func testCfg() config.Config {
	return config.Config{
		UploadBucketName: testBucket,
	}
}

func testIngestMetadata() *pxtable.TableMetadata {
	return &pxtable.TableMetadata{
		Title: "Gross domestic product by area",
		Variables: []pxtable.Variable{
			{
				Code:        "Vuosi",
				Label:       "Year",
				Values:      []string{"2020", "2021"},
				ValueLabels: []string{"2020", "2021"},
				IsTime:      true,
			},
			{
				Code:        "Alue",
				Label:       "Area",
				Values:      []string{"FI", "SE"},
				ValueLabels: []string{"Finland", "Sweden"},
			},
		},
	}
}

func sparseResponse() *pxtable.ProviderResponse {
	return &pxtable.ProviderResponse{
		Sparse: &pxtable.SparseResponse{
			Data: []pxtable.RawRow{
				{Key: []string{"2020", "FI"}, Values: []string{"100"}},
				{Key: []string{"2021", "FI"}, Values: []string{"110"}},
			},
		},
	}
}

func testMsg(e *event.TableIngest) *kafkatest.Message {
	b, err := schema.TableIngest.Marshal(e)
	So(err, ShouldBeNil)
	msg, err := kafkatest.NewMessage(b, 0)
	So(err, ShouldBeNil)
	return msg
}

func pxWebClientHappy() *mock.PxWebClientMock {
	return &mock.PxWebClientMock{
		GetMetadataFunc: func(ctx context.Context, tablePath string) (*pxtable.TableMetadata, error) {
			return testIngestMetadata(), nil
		},
		GetDataFunc: func(ctx context.Context, tablePath string, selection pxtable.Selection) (*pxtable.ProviderResponse, error) {
			return sparseResponse(), nil
		},
	}
}

func storeHappy() *mock.ObservationStoreMock {
	return &mock.ObservationStoreMock{
		UpsertObservationsFunc: func(ctx context.Context, obs []pxtable.Observation) error {
			return nil
		},
	}
}

func producerHappy() *kafkatest.IProducerMock {
	return &kafkatest.IProducerMock{
		SendFunc: func(s *avro.Schema, e interface{}) error {
			return nil
		},
	}
}

func TestHandle(t *testing.T) {
	Convey("Given a handler with successful collaborators", t, func() {
		pxWebClient := pxWebClientHappy()
		obsStore := storeHappy()
		producer := producerHappy()
		h := handler.NewTableIngest(testCfg(), pxWebClient, obsStore, nil, producer, nil)

		Convey("When Handle is triggered with a valid event", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:   testTableID,
				TablePath: testTablePath,
				SeriesID:  testSeriesID,
			}))

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then metadata and data are fetched from pxweb", func() {
				So(pxWebClient.GetMetadataCalls(), ShouldHaveLength, 1)
				So(pxWebClient.GetMetadataCalls()[0].TablePath, ShouldEqual, testTablePath)
				So(pxWebClient.GetDataCalls(), ShouldHaveLength, 1)
			})

			Convey("Then the data query selects all periods and defaults the area", func() {
				sel := pxWebClient.GetDataCalls()[0].Selection
				So(sel, ShouldHaveLength, 2)
				So(sel[0].Values, ShouldResemble, []string{"2020", "2021"})
				So(sel[1].Values, ShouldResemble, []string{"FI"})
			})

			Convey("Then flattened observations are upserted", func() {
				So(obsStore.UpsertObservationsCalls(), ShouldHaveLength, 1)
				obs := obsStore.UpsertObservationsCalls()[0].Obs
				So(obs, ShouldHaveLength, 2)
				So(obs[0].SeriesID, ShouldEqual, "gdp/FI")
				So(obs[0].Date, ShouldEqual, "2020-01-01")
				So(*obs[0].Value, ShouldEqual, 100)
				So(obs[1].Date, ShouldEqual, "2021-01-01")
			})

			Convey("Then an observations-imported event is produced", func() {
				So(producer.SendCalls(), ShouldHaveLength, 1)
				sent, ok := producer.SendCalls()[0].Event.(*event.ObservationsImported)
				So(ok, ShouldBeTrue)
				So(sent.TableID, ShouldEqual, testTableID)
				So(sent.RowCount, ShouldEqual, 2)
				So(sent.CSVURL, ShouldEqual, "")
			})
		})

		Convey("When the event carries a max periods cap", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:    testTableID,
				TablePath:  testTablePath,
				SeriesID:   testSeriesID,
				MaxPeriods: 1,
			}))

			Convey("Then only the most recent period is requested", func() {
				So(err, ShouldBeNil)
				sel := pxWebClient.GetDataCalls()[0].Selection
				So(sel[0].Values, ShouldResemble, []string{"2021"})
			})
		})
	})

	Convey("Given a handler with CSV export enabled", t, func() {
		cfg := testCfg()
		cfg.CSVExportEnabled = true

		s3Uploader := &mock.S3UploaderMock{
			BucketNameFunc: func() string { return testBucket },
			UploadWithContextFunc: func(ctx context.Context, input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
				return &s3manager.UploadOutput{Location: testS3Location}, nil
			},
		}
		gen := &mock.GeneratorMock{
			UniqueIDFunc: func() (string, error) { return "uuid1", nil },
		}
		producer := producerHappy()
		h := handler.NewTableIngest(cfg, pxWebClientHappy(), storeHappy(), s3Uploader, producer, gen)

		Convey("When Handle is triggered", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:   testTableID,
				TablePath: testTablePath,
				SeriesID:  testSeriesID,
			}))
			So(err, ShouldBeNil)

			Convey("Then the CSV file is uploaded with the generated key", func() {
				So(s3Uploader.UploadWithContextCalls(), ShouldHaveLength, 1)
				input := s3Uploader.UploadWithContextCalls()[0].Input
				So(*input.Bucket, ShouldEqual, testBucket)
				So(*input.Key, ShouldEqual, "tables/statfin-vtp-11tk-uuid1.csv")
			})

			Convey("Then the produced event carries the S3 location", func() {
				sent := producer.SendCalls()[0].Event.(*event.ObservationsImported)
				So(sent.CSVURL, ShouldEqual, testS3Location)
			})
		})
	})

	Convey("Given a handler whose pxweb client fails", t, func() {
		pxWebClient := &mock.PxWebClientMock{
			GetMetadataFunc: func(ctx context.Context, tablePath string) (*pxtable.TableMetadata, error) {
				return nil, errPxWeb
			},
		}
		h := handler.NewTableIngest(testCfg(), pxWebClient, storeHappy(), nil, producerHappy(), nil)

		Convey("Then Handle fails wrapping the pxweb error", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:   testTableID,
				TablePath: testTablePath,
				SeriesID:  testSeriesID,
			}))
			So(err, ShouldNotBeNil)
			So(errors.Is(err, errPxWeb), ShouldBeTrue)
		})
	})

	Convey("Given a handler whose store fails", t, func() {
		obsStore := &mock.ObservationStoreMock{
			UpsertObservationsFunc: func(ctx context.Context, obs []pxtable.Observation) error {
				return errStore
			},
		}
		producer := producerHappy()
		h := handler.NewTableIngest(testCfg(), pxWebClientHappy(), obsStore, nil, producer, nil)

		Convey("Then Handle fails and no event is produced", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:   testTableID,
				TablePath: testTablePath,
				SeriesID:  testSeriesID,
			}))
			So(errors.Is(err, errStore), ShouldBeTrue)
			So(producer.SendCalls(), ShouldHaveLength, 0)
		})
	})

	Convey("Given a handler receiving an invalid event", t, func() {
		pxWebClient := pxWebClientHappy()
		h := handler.NewTableIngest(testCfg(), pxWebClient, storeHappy(), nil, producerHappy(), nil)

		Convey("When the table path is empty", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:  testTableID,
				SeriesID: testSeriesID,
			}))

			Convey("Then Handle fails before contacting the provider", func() {
				So(err, ShouldNotBeNil)
				So(pxWebClient.GetMetadataCalls(), ShouldHaveLength, 0)
			})
		})

		Convey("When the series id is empty", func() {
			err := h.Handle(ctx, 1, testMsg(&event.TableIngest{
				TableID:   testTableID,
				TablePath: testTablePath,
			}))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFlattenResponse(t *testing.T) {
	Convey("Given an empty handler", t, func() {
		h := handler.NewTableIngest(testCfg(), nil, nil, nil, nil, nil)

		Convey("Then a sparse response is flattened against the table metadata", func() {
			rows, err := h.FlattenResponse(sparseResponse(), testIngestMetadata())
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].DimensionLabels["Alue"], ShouldEqual, "Finland")
		})

		Convey("Then a dense response is flattened against its own dimension block", func() {
			v1, v2 := 1.5, 2.5
			resp := &pxtable.ProviderResponse{
				Dense: &pxtable.DenseResponse{
					ID:    []string{"Vuosi"},
					Size:  []int{2},
					Value: []*float64{&v1, &v2},
					Dimension: map[string]pxtable.DenseDimension{
						"Vuosi": {
							Label: "Year",
							Category: pxtable.DenseCategory{
								Index: map[string]int{"2020": 0, "2021": 1},
								Label: map[string]string{"2020": "2020", "2021": "2021"},
							},
						},
					},
					Role: &pxtable.DenseRole{Time: []string{"Vuosi"}},
				},
			}

			rows, err := h.FlattenResponse(resp, testIngestMetadata())
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Date, ShouldEqual, "2020-01-01")
			So(*rows[1].Value, ShouldEqual, 2.5)
		})

		Convey("Then a nil response is rejected", func() {
			_, err := h.FlattenResponse(nil, testIngestMetadata())
			So(err, ShouldResemble, errors.New("nil provider response"))
		})
	})
}

func TestProduceImportedEvent(t *testing.T) {
	Convey("Given a handler with a failing producer", t, func() {
		producer := &kafkatest.IProducerMock{
			SendFunc: func(s *avro.Schema, e interface{}) error {
				return errKafka
			},
		}
		h := handler.NewTableIngest(testCfg(), nil, nil, nil, producer, nil)

		Convey("Then ProduceImportedEvent wraps the producer error", func() {
			err := h.ProduceImportedEvent(&event.TableIngest{TableID: testTableID}, 3, "")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, errKafka), ShouldBeTrue)
		})
	})
}
