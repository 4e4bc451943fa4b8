package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/samimiettinen/pxingest/config"
	"github.com/samimiettinen/pxingest/event"
	"github.com/samimiettinen/pxingest/schema"
)

const serviceName = "pxingest"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	// Get Config
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config", err)
		os.Exit(1)
	}

	// Create Kafka Producer
	kafkaProducer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.TableIngestTopic,
		KafkaVersion: &cfg.KafkaVersion,
	})
	if err != nil {
		log.Fatal(ctx, "fatal error trying to create kafka producer", err, log.Data{"topic": cfg.TableIngestTopic})
		os.Exit(1)
	}

	// kafka error logging go-routine
	kafkaProducer.LogErrors(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		e := scanEvent(scanner)
		log.Info(ctx, "sending table-ingest event", log.Data{"tableIngestEvent": e})

		if err := kafkaProducer.Send(schema.TableIngest, e); err != nil {
			log.Fatal(ctx, "table-ingest event error", err)
			os.Exit(1)
		}
	}
}

// scanEvent creates a TableIngest event according to the user input
func scanEvent(scanner *bufio.Scanner) *event.TableIngest {
	fmt.Println("--- [Send Kafka TableIngest] ---")

	fmt.Println("Please type the table_id")
	fmt.Printf("$ ")
	scanner.Scan()
	tableID := scanner.Text()

	fmt.Println("Please type the table_path")
	fmt.Printf("$ ")
	scanner.Scan()
	tablePath := scanner.Text()

	fmt.Println("Please type the series_id")
	fmt.Printf("$ ")
	scanner.Scan()
	seriesID := scanner.Text()

	fmt.Println("Please type the max_periods (empty for all)")
	fmt.Printf("$ ")
	scanner.Scan()
	maxPeriods, _ := strconv.Atoi(scanner.Text())

	return &event.TableIngest{
		TableID:    tableID,
		TablePath:  tablePath,
		SeriesID:   seriesID,
		MaxPeriods: int32(maxPeriods),
	}
}
