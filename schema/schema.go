package schema

import (
	"github.com/ONSdigital/dp-kafka/v3/avro"
)

var tableIngest = `{
  "type": "record",
  "name": "statistical-table-ingest",
  "fields": [
    {"name": "table_id", "type": "string", "default": ""},
    {"name": "table_path", "type": "string", "default": ""},
    {"name": "series_id", "type": "string", "default": ""},
    {"name": "max_periods", "type": "int", "default": 0}
  ]
}`

// TableIngest is the Avro schema for Table Ingest messages.
var TableIngest = &avro.Schema{
	Definition: tableIngest,
}

var observationsImported = `{
  "type": "record",
  "name": "statistical-observations-imported",
  "fields": [
    {"name": "table_id", "type": "string", "default": ""},
    {"name": "series_id", "type": "string", "default": ""},
    {"name": "row_count", "type": "int", "default": 0},
    {"name": "csv_url", "type": "string", "default": ""}
  ]
}`

// ObservationsImported is the Avro schema for Observations Imported messages.
var ObservationsImported = &avro.Schema{
	Definition: observationsImported,
}
