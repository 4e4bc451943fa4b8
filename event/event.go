package event

// TableIngest provides an avro structure for a Table Ingest event. TablePath
// is the provider path of the PxWeb table to flatten, SeriesID the base
// identifier under which its observations are stored.
type TableIngest struct {
	TableID    string `avro:"table_id"`
	TablePath  string `avro:"table_path"`
	SeriesID   string `avro:"series_id"`
	MaxPeriods int32  `avro:"max_periods"`
}

// ObservationsImported provides an avro structure for an Observations
// Imported event
type ObservationsImported struct {
	TableID  string `avro:"table_id"`
	SeriesID string `avro:"series_id"`
	RowCount int32  `avro:"row_count"`
	CSVURL   string `avro:"csv_url"`
}
