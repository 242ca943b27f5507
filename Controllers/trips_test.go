package Controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Sanle/Repository"
)

func TestTripsToExcel(t *testing.T) {
	trips := []Repository.TripView{
		{
			OSNumber:    7,
			CompanyName: "Transportes Sanle",
			DriverName:  "Carlos",
			Plate:       "ABC1D23",
			Origin:      "São Paulo",
			Destination: "Campinas",
			KmStart:     1000,
			KmEnd:       1100,
		},
	}

	buf, err := tripsToExcel(trips)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Viagens", "A1")
	require.NoError(t, err)
	assert.Equal(t, "OS", header)

	company, err := f.GetCellValue("Viagens", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Transportes Sanle", company)

	// KM Rodados is derived in the sheet, not stored on the trip.
	driven, err := f.GetCellValue("Viagens", "K2")
	require.NoError(t, err)
	assert.Equal(t, "100", driven)
}
