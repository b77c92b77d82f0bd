package external

// ElevationResponse is the Google Elevation API payload.
type ElevationResponse struct {
	Results      []ElevationResult `json:"results"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
}

type ElevationResult struct {
	Elevation  float64 `json:"elevation"`
	Resolution float64 `json:"resolution"`
	Location   struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}
