package models

// MarketPrice is one mandi price quote. The feed is statically mocked; the
// shape mirrors what a live AgMarkNet integration would return.
type MarketPrice struct {
	CropName        string  `json:"cropName"`
	PricePerQuintal float64 `json:"pricePerQuintal"`
	PercentChange   float64 `json:"percentChange"`
	Unit            string  `json:"unit"`
}

// NewsItem is a static agricultural news entry shown next to market prices.
type NewsItem struct {
	Title   string `json:"title"`
	Age     string `json:"age"`
	Summary string `json:"summary"`
}
