package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/domain/models"
)

type fakeCardRepo struct {
	cards []models.SoilCard
}

func (f fakeCardRepo) GetCard(_ context.Context, farmerID string) (models.SoilCard, error) {
	return models.SoilCard{}, models.ErrCardNotFound
}

func (f fakeCardRepo) SaveCard(context.Context, models.SoilCard) error { return nil }

func (f fakeCardRepo) ListCards(context.Context) ([]models.SoilCard, error) {
	return f.cards, nil
}

type fakeSheets struct {
	ranges []string
	rows   [][]interface{}
}

func (f *fakeSheets) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	f.ranges = append(f.ranges, sheetRange)
	f.rows = append(f.rows, rows...)
	return nil
}

var adminSession = models.Session{UserID: "uid-9", Role: models.RoleAdmin}

func TestExportCards(t *testing.T) {
	cards := []models.SoilCard{
		{
			FarmerID:   "FC-2026-000042",
			FarmerName: "Ram Lal",
			Village:    "Rampur",
			Soil:       models.SoilReading{PH: 6.5, OrganicCarbonPct: 0.6, NPK: "100:50:50"},
			CreatedAt:  time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		},
		{FarmerID: "FC-2026-000043", FarmerName: "Sita Devi", Village: "Basti"},
	}

	sheets := &fakeSheets{}
	svc := NewService(fakeCardRepo{cards: cards}, sheets, nil)

	count, err := svc.ExportCards(context.Background(), adminSession)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{cardsWriteRange}, sheets.ranges)

	require.Len(t, sheets.rows, 2)
	assert.Equal(t, "FC-2026-000042", sheets.rows[0][0])
	assert.Equal(t, "2026-08-28", sheets.rows[0][7])
}

func TestExportRequiresAdmin(t *testing.T) {
	sheets := &fakeSheets{}
	svc := NewService(fakeCardRepo{}, sheets, nil)

	farmer := models.Session{UserID: "uid-1", Role: models.RoleFarmer}
	_, err := svc.ExportCards(context.Background(), farmer)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, sheets.rows)
}

func TestExportEmptyStore(t *testing.T) {
	sheets := &fakeSheets{}
	svc := NewService(fakeCardRepo{}, sheets, nil)

	count, err := svc.ExportCards(context.Background(), adminSession)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, sheets.ranges, "no append call for an empty store")
}
