package entity

import (
	"encoding/json"
	"fmt"
)

// Range is an inclusive [Min, Max] interval, serialized as a two-element array.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Distance is how far v lies outside the range, 0 when inside.
func (r Range) Distance(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min - v
	case v > r.Max:
		return v - r.Max
	default:
		return 0
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Min, r.Max})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// Crop is an entry of the crop knowledge base. Rainfall is mm/month,
// temperature is °C and humidity is %.
type Crop struct {
	Key               string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	TempOptimal       Range    `json:"temp_optimal"`
	TempTolerance     Range    `json:"temp_tolerance"`
	RainfallOptimal   Range    `json:"rainfall_optimal"`
	RainfallTolerance Range    `json:"rainfall_tolerance"`
	GrowthPeriod      int      `json:"growth_period"`
	SeasonPreference  []string `json:"season_preference"`
	HumidityOptimal   Range    `json:"humidity_optimal"`
	EconomicValue     string   `json:"economic_value"`
	Difficulty        string   `json:"difficulty"`
	Description       string   `json:"description"`
}

// CropRecommendation is a crop scored against a weather summary.
type CropRecommendation struct {
	Crop
	Score       float64 `json:"score"`
	Suitability string  `json:"suitability"`
}

const (
	SeasonRainy      = "musim_hujan"
	SeasonDry        = "musim_kemarau"
	SeasonTransition = "peralihan"
)

// Crops is the knowledge base, in display order.
var Crops = []Crop{
	{
		Key: "padi", Name: "Padi", Category: "Biji-bijian",
		TempOptimal: Range{22, 28}, TempTolerance: Range{18, 32},
		RainfallOptimal: Range{150, 250}, RainfallTolerance: Range{100, 350},
		GrowthPeriod: 120, SeasonPreference: []string{SeasonRainy},
		HumidityOptimal: Range{70, 85}, EconomicValue: "tinggi", Difficulty: "sedang",
		Description: "Tanaman pangan utama, hasil tinggi di dataran rendah hingga menengah",
	},
	{
		Key: "jagung", Name: "Jagung", Category: "Biji-bijian",
		TempOptimal: Range{20, 28}, TempTolerance: Range{16, 35},
		RainfallOptimal: Range{85, 150}, RainfallTolerance: Range{60, 200},
		GrowthPeriod: 90, SeasonPreference: []string{"kemarau", SeasonTransition},
		HumidityOptimal: Range{60, 75}, EconomicValue: "tinggi", Difficulty: "mudah",
		Description: "Tahan kering, cocok di musim kemarau, bernilai ekonomi tinggi",
	},
	{
		Key: "kacang_tanah", Name: "Kacang Tanah", Category: "Kacang-kacangan",
		TempOptimal: Range{22, 30}, TempTolerance: Range{18, 35},
		RainfallOptimal: Range{50, 120}, RainfallTolerance: Range{40, 150},
		GrowthPeriod: 90, SeasonPreference: []string{"kemarau"},
		HumidityOptimal: Range{60, 70}, EconomicValue: "sedang", Difficulty: "mudah",
		Description: "Kaya protein nabati, tahan kering, baik untuk rotasi tanaman",
	},
	{
		Key: "kedelai", Name: "Kedelai", Category: "Kacang-kacangan",
		TempOptimal: Range{23, 27}, TempTolerance: Range{20, 30},
		RainfallOptimal: Range{100, 150}, RainfallTolerance: Range{80, 180},
		GrowthPeriod: 80, SeasonPreference: []string{SeasonTransition, "kemarau"},
		HumidityOptimal: Range{65, 75}, EconomicValue: "tinggi", Difficulty: "sedang",
		Description: "Sumber protein, pasar stabil, cocok dirotasi dengan padi",
	},
	{
		Key: "cabai", Name: "Cabai Rawit/Merah", Category: "Sayuran",
		TempOptimal: Range{20, 26}, TempTolerance: Range{18, 30},
		RainfallOptimal: Range{60, 120}, RainfallTolerance: Range{50, 150},
		GrowthPeriod: 75, SeasonPreference: []string{"kemarau", SeasonTransition},
		HumidityOptimal: Range{55, 70}, EconomicValue: "sangat_tinggi", Difficulty: "sedang",
		Description: "Nilai jual sangat tinggi dengan permintaan konsisten, cocok di dataran tinggi Wonosobo",
	},
	{
		Key: "tomat", Name: "Tomat", Category: "Sayuran",
		TempOptimal: Range{18, 24}, TempTolerance: Range{15, 28},
		RainfallOptimal: Range{60, 100}, RainfallTolerance: Range{40, 130},
		GrowthPeriod: 90, SeasonPreference: []string{"kemarau"},
		HumidityOptimal: Range{50, 65}, EconomicValue: "tinggi", Difficulty: "sedang",
		Description: "Cocok dengan iklim sejuk Wonosobo, pasar luas, bisa hidroponik",
	},
	{
		Key: "kentang", Name: "Kentang", Category: "Umbi-umbian",
		TempOptimal: Range{15, 22}, TempTolerance: Range{12, 25},
		RainfallOptimal: Range{80, 120}, RainfallTolerance: Range{60, 150},
		GrowthPeriod: 90, SeasonPreference: []string{"kemarau"},
		HumidityOptimal: Range{60, 75}, EconomicValue: "tinggi", Difficulty: "sedang",
		Description: "Komoditas unggulan dataran tinggi Wonosobo dengan margin besar",
	},
	{
		Key: "wortel", Name: "Wortel", Category: "Sayuran",
		TempOptimal: Range{16, 22}, TempTolerance: Range{13, 25},
		RainfallOptimal: Range{70, 110}, RainfallTolerance: Range{50, 140},
		GrowthPeriod: 75, SeasonPreference: []string{"kemarau"},
		HumidityOptimal: Range{65, 75}, EconomicValue: "sedang", Difficulty: "mudah",
		Description: "Sayuran iklim sejuk, mudah dibudidayakan, pasar stabil",
	},
	{
		Key: "bawang_daun", Name: "Bawang Daun", Category: "Sayuran",
		TempOptimal: Range{18, 25}, TempTolerance: Range{15, 28},
		RainfallOptimal: Range{60, 100}, RainfallTolerance: Range{50, 130},
		GrowthPeriod: 60, SeasonPreference: []string{SeasonTransition, "kemarau"},
		HumidityOptimal: Range{60, 70}, EconomicValue: "sedang", Difficulty: "mudah",
		Description: "Cepat panen, permintaan stabil, cocok untuk usaha kecil",
	},
	{
		Key: "kol", Name: "Kubis/Kol", Category: "Sayuran",
		TempOptimal: Range{15, 20}, TempTolerance: Range{12, 24},
		RainfallOptimal: Range{80, 120}, RainfallTolerance: Range{60, 150},
		GrowthPeriod: 85, SeasonPreference: []string{"kemarau"},
		HumidityOptimal: Range{65, 80}, EconomicValue: "sedang", Difficulty: "sedang",
		Description: "Sayuran iklim sejuk untuk pasar tradisional dan modern, tahan simpan",
	},
}
