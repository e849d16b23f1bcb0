package models

// WeatherSnapshot is the normalized result of a weather lookup for a location.
type WeatherSnapshot struct {
	TemperatureC   float64 `bson:"temperature_c" json:"temperatureC"`
	HumidityPct    float64 `bson:"humidity_pct" json:"humidityPct"`
	ConditionLabel string  `bson:"condition_label" json:"conditionLabel"`
	Advisory       string  `bson:"advisory" json:"advisory"`
}
