package external

// WilayahResponse is the Disdukcapil region list.
type WilayahResponse struct {
	Status string         `json:"status"`
	Data   []WilayahEntry `json:"data"`
}

// WilayahEntry keeps every upstream field; "nama" is the kecamatan name.
type WilayahEntry map[string]any

func (w WilayahEntry) Name() string {
	name, _ := w["nama"].(string)
	return name
}
