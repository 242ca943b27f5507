package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"Sanle/Repository"
)

type TripController struct {
	Repo *Repository.Coordinator
}

func NewTripController(repo *Repository.Coordinator) *TripController {
	return &TripController{Repo: repo}
}

func (tc *TripController) GetTrips(ctx *fiber.Ctx) error {
	trips, err := tc.Repo.ListTrips(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve trips"})
	}
	return ctx.JSON(trips)
}

// ExportTrips streams the trip history as an xlsx workbook.
func (tc *TripController) ExportTrips(ctx *fiber.Ctx) error {
	trips, err := tc.Repo.ListTrips(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve trips"})
	}

	buf, err := tripsToExcel(trips)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	filename := fmt.Sprintf("viagens_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}

func tripsToExcel(trips []Repository.TripView) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Viagens"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"OS", "Empresa", "Motorista", "Veículo", "Placa", "Data",
		"Origem", "Destino", "KM Inicial", "KM Final", "KM Rodados",
		"Horas Paradas", "Observações", "Concluído Em",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, trip := range trips {
		row := rowIndex + 2

		values := []interface{}{
			trip.OSNumber,
			trip.CompanyName,
			trip.DriverName,
			trip.VehicleModel,
			trip.Plate,
			trip.Date,
			trip.Origin,
			trip.Destination,
			trip.KmStart,
			trip.KmEnd,
			trip.KmEnd - trip.KmStart,
			trip.StoppedHours,
			trip.Observations,
			trip.FinishedAt,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 15)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
