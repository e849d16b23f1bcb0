package models

import "time"

// DailySnapshot is the scheduled advisory record persisted each morning:
// the weather for the default city plus the crops it favors.
type DailySnapshot struct {
	Date      time.Time       `bson:"date" json:"date"`
	City      string          `bson:"city" json:"city"`
	Weather   WeatherSnapshot `bson:"weather" json:"weather"`
	TopCrops  []CropCandidate `bson:"top_crops" json:"topCrops"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
}
