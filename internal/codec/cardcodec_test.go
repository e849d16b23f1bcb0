package codec

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/domain/models"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := []CardPayload{
		{FarmerID: "FC-2026-000042", FarmerName: "Ram Lal", Village: "Rampur", PH: 6.5, NPK: "100:50:50", OrganicCarbonPct: 0.6},
		{FarmerID: "FC-2026-999999", FarmerName: "Sita Devi", Village: "Basti & Sons", PH: 7.8, NPK: "80:40:40", OrganicCarbonPct: 1.25},
		{FarmerID: "FC-2025-000001", FarmerName: "अर्जुन", Village: "खेड़ा", PH: 5.2, NPK: "60:30:20", OrganicCarbonPct: 0.3},
	}

	for _, payload := range payloads {
		encoded, err := Encode(payload)
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestEncodeIsURLSafe(t *testing.T) {
	payload := CardPayload{FarmerID: "FC-2026-000042", FarmerName: "Ram Lal", Village: "Rampur", PH: 6.5, NPK: "100:50:50", OrganicCarbonPct: 0.6}

	encoded, err := Encode(payload)
	require.NoError(t, err)

	// The payload travels as a query parameter value; parsing it back out of
	// a URL must not change it.
	u, err := url.Parse("https://example.org/view?data=" + encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, u.Query().Get("data"))
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	cases := []string{
		"",
		"not-json",
		"%7Bhalf-open",
		"%ZZ",
		url.QueryEscape(`["array","not","object"]`),
		url.QueryEscape(`{"farmerId": }`),
		url.QueryEscape(`{"farmerId":"FC-2026-000042","farmerName":"Ram","village":"Rampur","ph":6.5,"npk":"1:2:3","organicCarbon":0.5}GARBAGE`),
		url.QueryEscape(`{"farmerId":"FC-2026-000042","farmerName":"Ram","village":"Rampur","ph":6.5,"npk":"1:2:3","organicCarbon":0.5}{}`),
	}

	for _, raw := range cases {
		decoded, err := Decode(raw)
		assert.ErrorIs(t, err, models.ErrMalformedPayload, "input %q", raw)
		assert.Equal(t, CardPayload{}, decoded, "no partial result for %q", raw)
	}
}

func TestDecodeRejectsIncompletePayloads(t *testing.T) {
	cases := []string{
		url.QueryEscape(`{}`),
		url.QueryEscape(`{"farmerId":"FC-2026-000042"}`),
		url.QueryEscape(`{"farmerId":"FC-2026-000042","farmerName":"Ram","village":"Rampur","npk":"1:2:3","organicCarbon":0.5}`),
		url.QueryEscape(`{"farmerId":"","farmerName":"Ram","village":"Rampur","ph":6.5,"npk":"1:2:3","organicCarbon":0.5}`),
	}

	for _, raw := range cases {
		decoded, err := Decode(raw)
		assert.ErrorIs(t, err, models.ErrIncompleteCard, "input %q", raw)
		assert.Equal(t, CardPayload{}, decoded, "no partial result for %q", raw)
	}
}

func TestFromCardProjection(t *testing.T) {
	card := models.SoilCard{
		FarmerID:            "FC-2026-000042",
		UserID:              "uid-1",
		FarmerName:          "Ram Lal",
		Village:             "Rampur",
		Soil:                models.SoilReading{PH: 6.5, OrganicCarbonPct: 0.6, NPK: "100:50:50"},
		RecommendationsText: "long advice text that must not travel in the QR payload",
	}

	payload := FromCard(card)
	assert.Equal(t, card.FarmerID, payload.FarmerID)
	assert.Equal(t, card.Soil.NPK, payload.NPK)

	encoded, err := Encode(payload)
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}
