package loadcalc

import (
	"math"
	"reflect"
	"testing"

	"github.com/hvacdesign/planload/constants"
	"github.com/hvacdesign/planload/internal/extract"
)

func testClimate() ClimateData {
	return ClimateData{
		Zone:                 "4A",
		HeatingDegreeDays:    4500,
		CoolingDegreeDays:    1200,
		WinterDesignTempF:    20,
		SummerDesignTempF:    92,
		SummerHumidityGrains: 35,
	}
}

func testEnvelope() extract.BuildingEnvelope {
	return extract.BuildingEnvelope{
		WallInsulationR:   13,
		CeilingR:          38,
		WindowUValue:      0.35,
		WindowSHGC:        0.30,
		AirTightnessACH50: 5,
		FoundationType:    "slab",
		Confidence:        0.85,
		Source:            constants.SourceTraditional,
	}
}

func calcRoom(name string, area, windows float64, walls int, orient string) extract.RoomRecord {
	return extract.RoomRecord{
		Name:           name,
		AreaSqFt:       area,
		WindowAreaSqFt: windows,
		ExteriorWalls:  walls,
		Orientation:    orient,
		CeilingHeight:  8,
		Confidence:     0.8,
		Source:         constants.SourceTraditional,
	}
}

// A 1480 sq ft single-story home in a mixed climate.
func house1480() *extract.ExtractionResult {
	return &extract.ExtractionResult{
		BlueprintID: "bp-1480",
		Envelope:    testEnvelope(),
		Rooms: []extract.RoomRecord{
			calcRoom("LIVING ROOM", 320, 45, 2, "S"),
			calcRoom("KITCHEN", 200, 20, 2, "W"),
			calcRoom("BEDROOM 1", 210, 25, 2, "E"),
			calcRoom("BEDROOM 2", 180, 20, 2, "N"),
			calcRoom("BEDROOM 3", 170, 20, 1, "S"),
			calcRoom("BATH", 90, 8, 1, "N"),
			calcRoom("HALL", 310, 12, 2, "W"),
		},
		DeclaredTotalSqFt: 1480,
		OverallConfidence: 0.8,
	}
}

func TestCalculate1480SqFtHome(t *testing.T) {
	got := Calculate(house1480(), testClimate())

	if len(got.Rooms) != 7 {
		t.Fatalf("got %d room loads, want 7", len(got.Rooms))
	}
	for _, r := range got.Rooms {
		if r.HeatingBTUH <= 0 || r.CoolingBTUH <= 0 {
			t.Errorf("room %s has non-positive load: %+v", r.Name, r)
		}
	}
	if got.TotalHeatingBTUH < 5000 || got.TotalHeatingBTUH > 25000 {
		t.Errorf("total heating = %v BTU/hr, outside plausible band for 1480 sq ft", got.TotalHeatingBTUH)
	}
	if got.TotalCoolingBTUH < 5000 || got.TotalCoolingBTUH > 30000 {
		t.Errorf("total cooling = %v BTU/hr, outside plausible band for 1480 sq ft", got.TotalCoolingBTUH)
	}
	if got.CoolingTons < 0.5 || got.CoolingTons > 4.0 {
		t.Errorf("tonnage = %v, outside plausible equipment range", got.CoolingTons)
	}
	if rem := math.Mod(got.CoolingTons*2, 1); rem != 0 {
		t.Errorf("tonnage %v not on a half-ton increment", got.CoolingTons)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	a := Calculate(house1480(), testClimate())
	b := Calculate(house1480(), testClimate())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same inputs produced different results:\n%+v\n%+v", a, b)
	}
}

// Diversity factors scale the aggregate only; per-room loads stay undiverted
// and the heating total equals their sum times 0.90.
func TestDiversityAppliesToAggregateOnly(t *testing.T) {
	got := Calculate(house1480(), testClimate())

	var sumHeat, sumCoolSensible float64
	for _, r := range got.Rooms {
		sumHeat += r.HeatingBTUH
		sumCoolSensible += r.CoolingBTUH
	}
	if math.Abs(got.TotalHeatingBTUH-sumHeat*0.90) > 1.0 {
		t.Errorf("total heating %v != 0.90 x room sum %v", got.TotalHeatingBTUH, sumHeat)
	}
	// cooling total adds whole-house latent before diversity, so it must
	// exceed the diversity-scaled sensible sum
	if got.TotalCoolingBTUH <= sumCoolSensible*0.85 {
		t.Errorf("total cooling %v missing the latent share above 0.85 x %v", got.TotalCoolingBTUH, sumCoolSensible)
	}
	// and the per-room records themselves must sum above the diverted
	// total, proving no room was individually scaled down
	if sumHeat <= got.TotalHeatingBTUH {
		t.Errorf("room heating sum %v should exceed diverted total %v", sumHeat, got.TotalHeatingBTUH)
	}
}

func TestColderClimateHeatsMore(t *testing.T) {
	mild := testClimate()
	cold := testClimate()
	cold.WinterDesignTempF = -10

	mildRes := Calculate(house1480(), mild)
	coldRes := Calculate(house1480(), cold)
	if coldRes.TotalHeatingBTUH <= mildRes.TotalHeatingBTUH {
		t.Errorf("heating at -10F (%v) should exceed heating at 20F (%v)",
			coldRes.TotalHeatingBTUH, mildRes.TotalHeatingBTUH)
	}
	// cooling is untouched by the winter design temperature
	if coldRes.TotalCoolingBTUH != mildRes.TotalCoolingBTUH {
		t.Errorf("cooling changed with winter design temp: %v vs %v",
			coldRes.TotalCoolingBTUH, mildRes.TotalCoolingBTUH)
	}
}

// Bonus rooms over unconditioned space pick up a floor loss term computed
// against a buffer temperature, not an ad hoc multiplier.
func TestOverUnconditionedFloorLoss(t *testing.T) {
	base := house1480()
	bonus := house1480()
	bonus.Rooms[2].OverUnconditioned = true

	baseRes := Calculate(base, testClimate())
	bonusRes := Calculate(bonus, testClimate())

	baseRoom := baseRes.Rooms[2]
	bonusRoom := bonusRes.Rooms[2]
	if bonusRoom.HeatingBTUH <= baseRoom.HeatingBTUH {
		t.Errorf("bonus room heating %v should exceed conditioned-floor heating %v",
			bonusRoom.HeatingBTUH, baseRoom.HeatingBTUH)
	}
	// buffer temperature halves the differential: the extra loss equals
	// area x floor U x half the winter delta
	wantExtra := 210 * floorOverUnconditionedU * (70.0 - 20.0) / 2
	gotExtra := bonusRoom.HeatingBTUH - baseRoom.HeatingBTUH
	if math.Abs(gotExtra-wantExtra) > 0.5 {
		t.Errorf("floor loss = %v, want %v", gotExtra, wantExtra)
	}
	// other rooms are untouched
	if bonusRes.Rooms[0] != baseRes.Rooms[0] {
		t.Errorf("unrelated room changed: %+v vs %+v", bonusRes.Rooms[0], baseRes.Rooms[0])
	}
}

// Basement foundations add a per-room ground-coupled conduction term, so the
// heating total still equals the room sum times the diversity factor.
func TestBasementGroundLossAdditive(t *testing.T) {
	slab := house1480()
	basement := house1480()
	basement.Envelope.FoundationType = "basement"

	slabRes := Calculate(slab, testClimate())
	baseRes := Calculate(basement, testClimate())

	var sumHeat float64
	for _, r := range baseRes.Rooms {
		sumHeat += r.HeatingBTUH
	}
	if math.Abs(baseRes.TotalHeatingBTUH-sumHeat*0.90) > 1.0 {
		t.Errorf("total heating %v != 0.90 x room sum %v", baseRes.TotalHeatingBTUH, sumHeat)
	}

	// each room carries its share: area x below-grade U x (indoor - ground)
	for i, r := range baseRes.Rooms {
		wantExtra := basement.Rooms[i].AreaSqFt * belowGradeU * (70.0 - groundTempF)
		gotExtra := r.HeatingBTUH - slabRes.Rooms[i].HeatingBTUH
		if math.Abs(gotExtra-wantExtra) > 0.5 {
			t.Errorf("room %s ground loss = %v, want %v", r.Name, gotExtra, wantExtra)
		}
	}
	if baseRes.TotalHeatingBTUH <= slabRes.TotalHeatingBTUH {
		t.Errorf("basement heating %v should exceed slab heating %v",
			baseRes.TotalHeatingBTUH, slabRes.TotalHeatingBTUH)
	}
	// ground coupling never drives cooling
	if baseRes.TotalCoolingBTUH != slabRes.TotalCoolingBTUH {
		t.Errorf("cooling changed with foundation type: %v vs %v",
			baseRes.TotalCoolingBTUH, slabRes.TotalCoolingBTUH)
	}
}

func TestSouthWestGlassGainsMore(t *testing.T) {
	south := &extract.ExtractionResult{
		Envelope: testEnvelope(),
		Rooms:    []extract.RoomRecord{calcRoom("SUN ROOM", 150, 40, 2, "S")},
	}
	north := &extract.ExtractionResult{
		Envelope: testEnvelope(),
		Rooms:    []extract.RoomRecord{calcRoom("SUN ROOM", 150, 40, 2, "N")},
	}
	s := Calculate(south, testClimate())
	n := Calculate(north, testClimate())
	if s.Rooms[0].CoolingBTUH <= n.Rooms[0].CoolingBTUH {
		t.Errorf("south glass cooling %v should exceed north %v",
			s.Rooms[0].CoolingBTUH, n.Rooms[0].CoolingBTUH)
	}
	if s.Rooms[0].HeatingBTUH != n.Rooms[0].HeatingBTUH {
		t.Error("solar orientation must not affect heating")
	}
}
