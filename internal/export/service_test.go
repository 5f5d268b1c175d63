package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
	"github.com/hvacdesign/planload/internal/loadcalc"
)

func sampleResult() (*extract.ExtractionResult, loadcalc.LoadCalculationResult) {
	res := &extract.ExtractionResult{
		BlueprintID: "bp-1",
		Envelope: extract.BuildingEnvelope{
			WallInsulationR:   13,
			CeilingR:          38,
			WindowUValue:      0.30,
			WindowSHGC:        0.25,
			AirTightnessACH50: 5,
			FoundationType:    "slab",
			Confidence:        0.9,
		},
		Rooms: []extract.RoomRecord{
			{Name: "LIVING ROOM", AreaSqFt: 320, WindowAreaSqFt: 40, ExteriorWalls: 3, Orientation: "S", Confidence: 0.85, Source: constants.SourceTraditional},
			{Name: "KITCHEN", AreaSqFt: 200, WindowAreaSqFt: 20, ExteriorWalls: 2, Orientation: "W", Confidence: 0.80, Source: constants.SourceTraditional},
		},
		DeclaredTotalSqFt: 520,
		OverallConfidence: 0.8,
		Warnings:          []string{"declared and extracted totals differ by 0 sq ft"},
		ExtractedAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	loads := loadcalc.LoadCalculationResult{
		Rooms: []loadcalc.RoomLoad{
			{Name: "LIVING ROOM", HeatingBTUH: 9000, CoolingBTUH: 7000},
			{Name: "KITCHEN", HeatingBTUH: 5000, CoolingBTUH: 4000},
		},
		TotalHeatingBTUH: 12600,
		TotalCoolingBTUH: 12000,
		CoolingTons:      1.0,
		Climate:          loadcalc.ClimateData{Zone: "4A", WinterDesignTempF: 20, SummerDesignTempF: 92},
	}
	return res, loads
}

func TestLoadSheetXLSX(t *testing.T) {
	res, loads := sampleResult()
	svc := NewService(nil)

	raw, err := svc.LoadSheetXLSX(context.Background(), res, loads)
	if err != nil {
		t.Fatalf("LoadSheetXLSX: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	found := map[string]bool{}
	for _, s := range sheets {
		found[s] = true
	}
	if !found["Load Summary"] || !found["Rooms"] {
		t.Fatalf("sheets = %v, want Load Summary and Rooms", sheets)
	}

	if v, _ := f.GetCellValue("Load Summary", "A1"); v != "Blueprint" {
		t.Errorf("A1 = %q", v)
	}
	if v, _ := f.GetCellValue("Load Summary", "B1"); v != "bp-1" {
		t.Errorf("B1 = %q", v)
	}

	// per-room rows start under the header
	if v, _ := f.GetCellValue("Rooms", "A2"); v != "LIVING ROOM" {
		t.Errorf("Rooms A2 = %q", v)
	}
	if v, _ := f.GetCellValue("Rooms", "F2"); v != "9000" {
		t.Errorf("Rooms F2 = %q, want heating for the living room", v)
	}
	if v, _ := f.GetCellValue("Rooms", "A3"); v != "KITCHEN" {
		t.Errorf("Rooms A3 = %q", v)
	}
}
