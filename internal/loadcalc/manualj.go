package loadcalc

import (
	"math"

	"github.com/hvacdesign/planload/internal/extract"
)

// Physics constants. Air factors come from the standard sensible and latent
// load equations at sea level.
const (
	indoorWinterF = 70.0
	indoorSummerF = 75.0

	// sensible infiltration: 0.018 BTU per cubic foot per degree F per
	// air change per hour
	airSensibleFactor = 0.018
	// latent infiltration: 0.68 BTU per CFM per grain of moisture
	airLatentFactor = 0.68
	// natural infiltration is roughly blower-door ACH50 divided by 20
	ach50ToNatural = 20.0

	// peak solar heat gain through vertical glass, BTU/hr per sq ft,
	// before the SHGC and orientation weighting
	solarPeakFactor = 200.0

	// fraction of total cooling load that is sensible; the latent share
	// of internal/infiltration gains rides on top of this
	sensibleHeatFactor = 0.75

	heatingDiversity = 0.90
	coolingDiversity = 0.85

	// U-value of an uninsulated wood floor over unconditioned space
	floorOverUnconditionedU = 0.08

	// below grade wall and floor assembly of a basement, and the ground
	// temperature it conducts against year round
	belowGradeU = 0.05
	groundTempF = 55.0

	btuPerTon      = 12000.0
	tonnageStep    = 0.5
	defaultCeiling = 8.0
)

// orientationWeight scales the peak solar factor per compass exposure. West
// glass peaks with the afternoon temperature; north glass sees diffuse sky
// only.
var orientationWeight = map[string]float64{
	"S": 1.0,
	"W": 1.15,
	"E": 0.85,
	"N": 0.35,
}

// RoomLoad is the per-room result before any diversity is applied. Cooling
// is the room's sensible load; latent load is a whole-house quantity.
type RoomLoad struct {
	Name        string
	HeatingBTUH float64
	CoolingBTUH float64
}

// LoadCalculationResult carries per-room loads, diversity-adjusted totals,
// and the implied equipment size. It holds no reference back to raw pipeline
// artifacts.
type LoadCalculationResult struct {
	Rooms []RoomLoad
	// Totals carry the aggregate diversity factors; individual rooms do
	// not, since not all rooms peak simultaneously.
	TotalHeatingBTUH float64
	TotalCoolingBTUH float64
	CoolingTons      float64
	Climate          ClimateData
}

// Calculate is a pure function from validated extraction plus climate design
// conditions to loads. Same inputs always produce the same outputs.
func Calculate(res *extract.ExtractionResult, climate ClimateData) LoadCalculationResult {
	env := res.Envelope
	winterDT := indoorWinterF - climate.WinterDesignTempF
	summerDT := climate.SummerDesignTempF - indoorSummerF
	if winterDT < 0 {
		winterDT = 0
	}
	if summerDT < 0 {
		summerDT = 0
	}

	wallU := rToU(env.WallInsulationR)
	ceilU := rToU(env.CeilingR)

	out := LoadCalculationResult{Climate: climate}
	var sumHeat, sumCoolSensible, totalCFM float64

	for _, room := range res.Rooms {
		ceilingH := room.CeilingHeight
		if ceilingH <= 0 {
			ceilingH = defaultCeiling
		}

		wallArea := exteriorWallArea(room, ceilingH)
		winAreaS := math.Min(room.WindowAreaSqFt, wallArea)
		netWall := wallArea - winAreaS

		heat := netWall*wallU*winterDT +
			room.AreaSqFt*ceilU*winterDT +
			winAreaS*env.WindowUValue*winterDT

		coolSensible := netWall*wallU*summerDT +
			room.AreaSqFt*ceilU*summerDT +
			winAreaS*env.WindowUValue*summerDT

		// infiltration, apportioned by room volume
		volume := room.AreaSqFt * ceilingH
		naturalACH := env.AirTightnessACH50 / ach50ToNatural
		heat += airSensibleFactor * volume * naturalACH * winterDT
		coolSensible += airSensibleFactor * volume * naturalACH * summerDT
		totalCFM += naturalACH * volume / 60

		// solar gain through glass by exposure
		if w, ok := orientationWeight[room.Orientation]; ok {
			coolSensible += winAreaS * env.WindowSHGC * solarPeakFactor * w
		}

		// rooms over unconditioned space lose through the floor to a
		// buffer at the midpoint temperature, not the full outdoors
		if room.OverUnconditioned {
			bufferWinter := (indoorWinterF + climate.WinterDesignTempF) / 2
			bufferSummer := (indoorSummerF + climate.SummerDesignTempF) / 2
			heat += room.AreaSqFt * floorOverUnconditionedU * (indoorWinterF - bufferWinter)
			coolSensible += room.AreaSqFt * floorOverUnconditionedU * math.Max(0, bufferSummer-indoorSummerF)
		}

		// basement foundations conduct through the below grade assembly
		// to ground temperature instead of design air, same additive
		// form as every other surface; the ground never drives cooling
		if env.FoundationType == "basement" {
			heat += room.AreaSqFt * belowGradeU * math.Max(0, indoorWinterF-groundTempF)
		}

		out.Rooms = append(out.Rooms, RoomLoad{
			Name:        room.Name,
			HeatingBTUH: round1(heat),
			CoolingBTUH: round1(coolSensible),
		})
		sumHeat += heat
		sumCoolSensible += coolSensible
	}

	// latent cooling rides on the aggregate: from the climate moisture
	// grains when the service reports them, otherwise from the fixed
	// sensible-heat factor
	var latent float64
	if climate.SummerHumidityGrains > 0 {
		latent = airLatentFactor * totalCFM * climate.SummerHumidityGrains
	} else {
		latent = sumCoolSensible * (1/sensibleHeatFactor - 1)
	}

	out.TotalHeatingBTUH = round1(sumHeat * heatingDiversity)
	out.TotalCoolingBTUH = round1((sumCoolSensible + latent) * coolingDiversity)
	out.CoolingTons = roundToTonStep(out.TotalCoolingBTUH / btuPerTon)
	return out
}

// exteriorWallArea approximates exposed wall area from the room footprint:
// a room of area A has sides near sqrt(A), and each counted exterior wall
// contributes one side of envelope at ceiling height.
func exteriorWallArea(room extract.RoomRecord, ceilingH float64) float64 {
	if room.ExteriorWalls <= 0 || room.AreaSqFt <= 0 {
		return 0
	}
	side := math.Sqrt(room.AreaSqFt)
	return side * float64(room.ExteriorWalls) * ceilingH
}

func rToU(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return 1 / r
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundToTonStep rounds to the nearest standard equipment increment. Any
// non-zero load needs at least the smallest unit.
func roundToTonStep(tons float64) float64 {
	if tons <= 0 {
		return 0
	}
	stepped := math.Round(tons/tonnageStep) * tonnageStep
	if stepped < tonnageStep {
		return tonnageStep
	}
	return stepped
}
