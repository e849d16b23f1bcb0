package advisory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	"github.com/greencoders/soilcard/internal/service/recommend"
	"github.com/greencoders/soilcard/pkg/clients/gemini"
)

const scheduleTopN = 3

// chatFallback is returned verbatim whenever the assistant call fails.
const chatFallback = "I'm having trouble right now. Please try asking your question again."

// cardFallback is the legacy static recommendation text, kept as the offline
// body for card generation.
const cardFallback = "Apply balanced NPK fertilizer. Add organic compost to improve soil health. Consider crops suitable for your soil pH level."

// Assembler describes the advisory operations consumed by cards and HTTP
// layers. Every method returns a non-empty string; external failures are
// absorbed behind deterministic fallbacks and never propagate.
type Assembler interface {
	AssembleSchedule(ctx context.Context, soil models.SoilReading, location string, weather models.WeatherSnapshot) string
	CardRecommendations(ctx context.Context, soil models.SoilReading, village string) string
	Chat(ctx context.Context, message string) string
}

// Service is the production Assembler backed by the Gemini client.
type Service struct {
	ai     gemini.Client
	logger *zap.Logger
}

// NewService wires a new advisory service. A nil AI client is allowed and
// forces every call down the fallback path.
func NewService(ai gemini.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ai: ai, logger: logger}
}

// AssembleSchedule scores the reference crops, embeds the formatted ranking in
// an agronomy prompt and returns the generated schedule. On any failure from
// the generation call the deterministic local fallback is returned instead,
// with the formatted ranking included verbatim.
func (s *Service) AssembleSchedule(ctx context.Context, soil models.SoilReading, location string, weather models.WeatherSnapshot) string {
	candidates := recommend.Score(soil, weather, scheduleTopN)
	ranking := recommend.Format(candidates, soil)

	prompt := fmt.Sprintf(`As an agricultural expert, create a detailed farming schedule and recommendations for an Indian farmer.

Data-grounded crop ranking:
%s

Location: %s
Current weather: %s, %.0f°C, %.0f%% humidity

Provide specific recommendations in this format:

1. WHAT TO PLANT:
   - Best crops for this soil (2-3 crops)

2. WHEN TO PLANT:
   - Ideal planting months

3. WATERING SCHEDULE:
   - Frequency and amount

4. FERTILIZER & PESTICIDES:
   - Types and quantities
   - Application timing

5. EXPECTED HARVEST:
   - Timeline and yield estimate

Keep language simple and practical for Indian farmers.`,
		ranking, location, weather.ConditionLabel, weather.TemperatureC, weather.HumidityPct)

	if s.ai != nil {
		text, err := s.ai.GenerateText(ctx, prompt, gemini.GenerationOptions{Temperature: 0.7, MaxOutputTokens: 500})
		if err == nil && text != "" {
			return text
		}
		s.logger.Warn("schedule generation failed, using local fallback", zap.Error(err))
	}

	return fallbackSchedule(ranking)
}

// CardRecommendations produces the short advice block stored on a new card.
func (s *Service) CardRecommendations(ctx context.Context, soil models.SoilReading, village string) string {
	prompt := fmt.Sprintf(`As an agricultural expert, analyze this soil data and provide brief recommendations for Indian farmers:

pH: %.1f
Organic Carbon: %.2f%%
NPK: %s
Location: %s

Provide 2-3 sentences covering suitable crops, fertilizer needs, and soil improvements.`,
		soil.PH, soil.OrganicCarbonPct, soil.NPK, village)

	if s.ai != nil {
		text, err := s.ai.GenerateText(ctx, prompt, gemini.GenerationOptions{Temperature: 0.7, MaxOutputTokens: 200})
		if err == nil && text != "" {
			return text
		}
		s.logger.Warn("card recommendation generation failed, using static fallback", zap.Error(err))
	}

	return cardFallback
}

// Chat proxies a free-form question to the assistant persona.
func (s *Service) Chat(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(`You are Kisan Sahayak, a helpful farming assistant for Indian farmers. Answer briefly in 2-3 sentences.

Question: %s

Answer:`, message)

	if s.ai != nil {
		text, err := s.ai.GenerateText(ctx, prompt, gemini.GenerationOptions{Temperature: 0.9, MaxOutputTokens: 150})
		if err == nil && text != "" {
			return text
		}
		s.logger.Warn("assistant chat failed, using fallback reply", zap.Error(err))
	}

	return chatFallback
}

// fallbackSchedule builds the offline schedule from the formatted ranking and
// generic agronomic boilerplate. Same ranking in, byte-identical text out.
func fallbackSchedule(ranking string) string {
	return fmt.Sprintf(`%s

WATERING SCHEDULE:
   - Water every 7-10 days
   - 50-60mm per irrigation

ROTATION & SOIL CARE:
   - Rotate cereals with legumes each season to restore nitrogen
   - Apply organic compost before sowing; top-dress urea after 30 days

EXPECTED HARVEST:
   - Rabi sowing October-November, harvest March-April (4-5 months)`, ranking)
}
