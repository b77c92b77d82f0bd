package entity

import (
	"strings"

	"ecoscope/pkg/util/geoutils"
)

// Location identifies a BMKG forecast site.
type Location struct {
	Adm4      string  `json:"adm4"`
	Desa      string  `json:"desa"`
	Kecamatan string  `json:"kecamatan"`
	Kotkab    string  `json:"kotkab"`
	Provinsi  string  `json:"provinsi"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Timezone  string  `json:"timezone"`
}

// District is a kecamatan of Kabupaten Wonosobo with the ADM4 code of its
// reference village.
type District struct {
	Name string  `json:"name"`
	Adm4 string  `json:"adm4"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Districts lists the Wonosobo kecamatan served by the dashboard.
var Districts = []District{
	{Name: "Wonosobo", Adm4: "33.07.09.1020", Lat: -7.3632, Lon: 109.9006},
	{Name: "Kertek", Adm4: "33.07.08.1008", Lat: -7.3828, Lon: 109.9575},
	{Name: "Garung", Adm4: "33.07.12.1005", Lat: -7.2944, Lon: 109.9167},
	{Name: "Leksono", Adm4: "33.07.05.1006", Lat: -7.4111, Lon: 109.8556},
	{Name: "Kaliwiro", Adm4: "33.07.04.1015", Lat: -7.4667, Lon: 109.8167},
	{Name: "Sukoharjo", Adm4: "33.07.14.2003", Lat: -7.4239, Lon: 109.8931},
	{Name: "Sapuran", Adm4: "33.07.03.1008", Lat: -7.4500, Lon: 110.0167},
	{Name: "Kalibawang", Adm4: "33.07.15.2001", Lat: -7.5083, Lon: 109.8917},
	{Name: "Kalikajar", Adm4: "33.07.07.1006", Lat: -7.4000, Lon: 110.0000},
	{Name: "Kepil", Adm4: "33.07.02.1008", Lat: -7.5000, Lon: 110.0667},
	{Name: "Mojotengah", Adm4: "33.07.11.1009", Lat: -7.3194, Lon: 109.9000},
	{Name: "Selomerto", Adm4: "33.07.06.1008", Lat: -7.4083, Lon: 109.8944},
	{Name: "Wadaslintang", Adm4: "33.07.01.1007", Lat: -7.5833, Lon: 109.7833},
	{Name: "Watumalang", Adm4: "33.07.10.1010", Lat: -7.2833, Lon: 109.8333},
	{Name: "Kejajar", Adm4: "33.07.13.1008", Lat: -7.2167, Lon: 109.9333},
}

// FindDistrict looks a district up by name, ignoring case and surrounding spaces.
func FindDistrict(name string) (District, bool) {
	name = strings.TrimSpace(name)
	for _, d := range Districts {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return District{}, false
}

// NearestDistrict returns the district whose centre is closest to lat/lon.
func NearestDistrict(lat, lon float64) District {
	nearest := Districts[0]
	best := geoutils.Haversine(lat, lon, nearest.Lat, nearest.Lon)
	for _, d := range Districts[1:] {
		if dist := geoutils.Haversine(lat, lon, d.Lat, d.Lon); dist < best {
			nearest, best = d, dist
		}
	}
	return nearest
}
