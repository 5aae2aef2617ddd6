package weather

// WMO weather interpretation codes, per https://open-meteo.com/en/docs.
var wmoCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle: light",
	53: "Drizzle: moderate",
	55: "Drizzle: dense intensity",
	61: "Rain: slight",
	63: "Rain: moderate",
	65: "Rain: heavy intensity",
	66: "Freezing rain: light",
	67: "Freezing rain: heavy intensity",
	71: "Snow fall: light",
	73: "Snow fall: moderate",
	75: "Snow fall: heavy intensity",
	77: "Snow grains",
	80: "Rain showers: light",
	81: "Rain showers: moderate",
	82: "Rain showers: violent",
	85: "Snow showers: light",
	86: "Snow showers: heavy",
	95: "Thunderstorm: slight or moderate",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the human-readable description of a WMO weather code.
func Describe(code int) string {
	if description, ok := wmoCodes[code]; ok {
		return description
	}
	return "Unknown conditions"
}
