package external

// DisdagPriceItem is one row of the Disdagkopukm produk-komoditas feed.
// Harga arrives either as a number or as a formatted string like "Rp 12.500".
type DisdagPriceItem struct {
	Komoditas string `json:"komoditas"`
	Kategori  string `json:"kategori"`
	Pasar     string `json:"pasar"`
	Satuan    string `json:"satuan"`
	Harga     any    `json:"harga"`
	Tanggal   string `json:"tanggal"`
}

// DisdagCommodity is a free-form row of the komoditas feed; only "nama" is relied on.
type DisdagCommodity map[string]any

func (c DisdagCommodity) Name() string {
	name, _ := c["nama"].(string)
	return name
}

// DisdagEnvelope covers the feeds that wrap their rows in {"data": [...]}.
type DisdagEnvelope[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
}
