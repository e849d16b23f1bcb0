package models

import "time"

// SoilCard is a farmer's persisted soil health card. A farmer owns at most one
// card; the record is read-only after creation.
type SoilCard struct {
	FarmerID            string      `bson:"farmer_id" json:"farmerId"`
	UserID              string      `bson:"user_id" json:"userId"`
	FarmerName          string      `bson:"farmer_name" json:"farmerName"`
	Village             string      `bson:"village" json:"village"`
	Soil                SoilReading `bson:"soil" json:"soil"`
	RecommendationsText string      `bson:"recommendations_text" json:"recommendationsText"`
	CreatedAt           time.Time   `bson:"created_at" json:"createdAt"`
}

// CropCandidate is one ranked entry produced by a scoring call. Candidates are
// ephemeral except inside DailySnapshot, where the morning top crops are kept.
type CropCandidate struct {
	Name             string  `bson:"name" json:"name"`
	SuitabilityScore float64 `bson:"suitability_score" json:"suitabilityScore"`
	Rationale        string  `bson:"rationale" json:"rationale"`
}
