package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/greencoders/soilcard/internal/domain/models"
)

// CardPayload is the fixed projection of a soil card embedded in the shareable
// QR payload. It deliberately carries a subset of SoilCard; anyone scanning the
// code can render it without authentication.
type CardPayload struct {
	FarmerID         string  `json:"farmerId"`
	FarmerName       string  `json:"farmerName"`
	Village          string  `json:"village"`
	PH               float64 `json:"ph"`
	NPK              string  `json:"npk"`
	OrganicCarbonPct float64 `json:"organicCarbon"`
}

// FromCard projects a stored card onto the transportable payload.
func FromCard(card models.SoilCard) CardPayload {
	return CardPayload{
		FarmerID:         card.FarmerID,
		FarmerName:       card.FarmerName,
		Village:          card.Village,
		PH:               card.Soil.PH,
		NPK:              card.Soil.NPK,
		OrganicCarbonPct: card.Soil.OrganicCarbonPct,
	}
}

// Encode serializes the payload as percent-encoded JSON suitable for a
// `data=` query parameter or a QR code body.
func Encode(payload CardPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal card payload: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode reverses Encode. It is all-or-nothing: a payload that is not valid
// percent-encoded JSON yields ErrMalformedPayload, and a parsed payload missing
// any required field yields ErrIncompleteCard. No partially-filled result is
// ever returned.
func Decode(encoded string) (CardPayload, error) {
	unescaped, err := url.QueryUnescape(encoded)
	if err != nil {
		return CardPayload{}, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}

	dec := json.NewDecoder(strings.NewReader(unescaped))
	var fields struct {
		FarmerID         *string  `json:"farmerId"`
		FarmerName       *string  `json:"farmerName"`
		Village          *string  `json:"village"`
		PH               *float64 `json:"ph"`
		NPK              *string  `json:"npk"`
		OrganicCarbonPct *float64 `json:"organicCarbon"`
	}
	if err := dec.Decode(&fields); err != nil {
		return CardPayload{}, fmt.Errorf("%w: %v", models.ErrMalformedPayload, err)
	}
	// Decode stops after one JSON value; anything left over means the input
	// was not a single payload object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return CardPayload{}, fmt.Errorf("%w: trailing data after payload", models.ErrMalformedPayload)
	}

	switch {
	case fields.FarmerID == nil || *fields.FarmerID == "",
		fields.FarmerName == nil || *fields.FarmerName == "",
		fields.Village == nil || *fields.Village == "",
		fields.PH == nil,
		fields.NPK == nil || *fields.NPK == "",
		fields.OrganicCarbonPct == nil:
		return CardPayload{}, models.ErrIncompleteCard
	}

	return CardPayload{
		FarmerID:         *fields.FarmerID,
		FarmerName:       *fields.FarmerName,
		Village:          *fields.Village,
		PH:               *fields.PH,
		NPK:              *fields.NPK,
		OrganicCarbonPct: *fields.OrganicCarbonPct,
	}, nil
}
