package pxtable

// Observation is one flat, storable time-series value. The (SeriesID, Date)
// pair is the upsert key expected by the storage collaborator.
type Observation struct {
	SeriesID string   `json:"series_id"`
	Date     string   `json:"date"`
	Value    *float64 `json:"value"`
}

// Observations assembles storable observations from canonical rows,
// dropping the dimension maps. Rows with distinct dimension combinations get
// distinct series identifiers by suffixing the base id with the stable
// series key; rows without dimensions keep the base id unchanged.
func Observations(seriesID string, rows []Row) []Observation {
	obs := make([]Observation, 0, len(rows))
	for _, row := range rows {
		id := seriesID
		if key := SeriesKey(row.Dimensions); key != "" {
			id = seriesID + "/" + key
		}
		obs = append(obs, Observation{
			SeriesID: id,
			Date:     row.Date,
			Value:    row.Value,
		})
	}
	return obs
}
