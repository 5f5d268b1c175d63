package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/loadcalc"
)

// Service produces XLSX bytes for load-sheet exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	summarySheet = "Load Summary"
	roomsSheet   = "Rooms"
)

// LoadSheetXLSX renders a calculated job as a two-sheet workbook: a summary
// with the design conditions and equipment size, and a per-room breakdown.
func (s *Service) LoadSheetXLSX(ctx context.Context, res *extract.ExtractionResult, loads loadcalc.LoadCalculationResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := s.writeSummary(f, res, loads); err != nil {
		return nil, err
	}
	if err := s.writeRooms(f, res, loads); err != nil {
		return nil, err
	}
	// excelize seeds a default "Sheet1"; drop it so the summary leads
	_ = f.DeleteSheet("Sheet1")
	if idx, _ := f.GetSheetIndex(summarySheet); idx >= 0 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"blueprint_id", res.BlueprintID,
		"rooms", len(res.Rooms),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, res *extract.ExtractionResult, loads loadcalc.LoadCalculationResult) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	set := func(cell string, v any) {
		_ = f.SetCellValue(summarySheet, cell, v)
	}

	rows := []struct {
		label string
		value any
	}{
		{"Blueprint", res.BlueprintID},
		{"Extracted At", res.ExtractedAt.Format("2006-01-02 15:04 MST")},
		{"Climate Zone", loads.Climate.Zone},
		{"Winter Design Temp (F)", loads.Climate.WinterDesignTempF},
		{"Summer Design Temp (F)", loads.Climate.SummerDesignTempF},
		{"Conditioned Area (sq ft)", res.TotalRoomArea()},
		{"Declared Area (sq ft)", res.DeclaredTotalSqFt},
		{"Wall Insulation (R)", res.Envelope.WallInsulationR},
		{"Ceiling Insulation (R)", res.Envelope.CeilingR},
		{"Window U-Value", res.Envelope.WindowUValue},
		{"Window SHGC", res.Envelope.WindowSHGC},
		{"Air Tightness (ACH50)", res.Envelope.AirTightnessACH50},
		{"Foundation", res.Envelope.FoundationType},
		{"Total Heating (BTU/hr)", loads.TotalHeatingBTUH},
		{"Total Cooling (BTU/hr)", loads.TotalCoolingBTUH},
		{"Cooling Equipment (tons)", loads.CoolingTons},
		{"Overall Confidence", res.OverallConfidence},
	}
	for i, r := range rows {
		set(fmt.Sprintf("A%d", i+1), r.label)
		set(fmt.Sprintf("B%d", i+1), r.value)
	}

	// warnings below the summary block, one per row
	warnRow := len(rows) + 2
	for i, w := range res.Warnings {
		set(fmt.Sprintf("A%d", warnRow+i), "Warning")
		set(fmt.Sprintf("B%d", warnRow+i), w)
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 44)
	return nil
}

func (s *Service) writeRooms(f *excelize.File, res *extract.ExtractionResult, loads loadcalc.LoadCalculationResult) error {
	if _, err := f.NewSheet(roomsSheet); err != nil {
		return err
	}

	headers := []string{
		"Room",
		"Area (sq ft)",
		"Window Area (sq ft)",
		"Exterior Walls",
		"Orientation",
		"Heating (BTU/hr)",
		"Cooling Sensible (BTU/hr)",
		"Source",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(roomsSheet, cell, h)
	}

	// loads.Rooms parallels res.Rooms; index by name to stay order-proof
	loadByName := make(map[string]loadcalc.RoomLoad, len(loads.Rooms))
	for _, rl := range loads.Rooms {
		loadByName[rl.Name] = rl
	}

	row := 2
	for _, r := range res.Rooms {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(roomsSheet, cell, v)
		}
		write(1, r.Name)
		write(2, r.AreaSqFt)
		write(3, r.WindowAreaSqFt)
		write(4, r.ExteriorWalls)
		write(5, r.Orientation)
		if rl, ok := loadByName[r.Name]; ok {
			write(6, rl.HeatingBTUH)
			write(7, rl.CoolingBTUH)
		}
		write(8, string(r.Source))
		write(9, r.Confidence)
		row++
	}

	_ = f.SetColWidth(roomsSheet, "A", "A", 24)
	_ = f.SetColWidth(roomsSheet, "B", "G", 16)
	return nil
}
