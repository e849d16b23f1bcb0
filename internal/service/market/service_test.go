package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricesAreFixedAndOrdered(t *testing.T) {
	svc := NewService(nil)

	prices := svc.Prices()
	require.Len(t, prices, 5)

	names := make([]string, 0, len(prices))
	for _, p := range prices {
		names = append(names, p.CropName)
		assert.Greater(t, p.PricePerQuintal, 0.0)
		assert.Equal(t, "q", p.Unit)
	}
	assert.Equal(t, []string{"Wheat", "Rice", "Maize", "Cotton", "Sugarcane"}, names)

	assert.Equal(t, prices, svc.Prices(), "mocked feed must be stable")
}

func TestNewsShape(t *testing.T) {
	svc := NewService(nil)

	news := svc.News()
	require.Len(t, news, 3)
	for _, item := range news {
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Age)
		assert.NotEmpty(t, item.Summary)
	}
}
