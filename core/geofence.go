package core

import (
	"math"

	"factorygate.in/factorygate/model"
)

const earthRadiusM = 6371000

// Verdict is the outcome of a geofence resolution.
type Verdict struct {
	MatchedName    string  `json:"matchedLocation"`
	Within         bool    `json:"within"`
	DistanceMeters float64 `json:"distance"`
}

// Resolve finds the nearest authorized location and reports whether the
// point lies inside its radius (boundary inclusive). With an empty registry
// it falls back to the single factory point from settings; if that is not
// finite either, the point is outside everything.
//
// Callers validate coordinates before calling; lat/lng are assumed finite.
func Resolve(lat, lng float64, locations []model.Location, settings Settings) Verdict {
	if len(locations) == 0 {
		if !isFinite(settings.FactoryLat) || !isFinite(settings.FactoryLng) {
			return Verdict{DistanceMeters: math.Inf(1)}
		}
		dist := distanceMeters(lat, lng, settings.FactoryLat, settings.FactoryLng)
		return Verdict{
			Within:         dist <= settings.GeofenceRadiusM,
			DistanceMeters: dist,
		}
	}

	best := locations[0]
	bestDist := distanceMeters(lat, lng, best.Latitude, best.Longitude)
	for _, loc := range locations[1:] {
		// strict less-than keeps the first listed location on ties
		if d := distanceMeters(lat, lng, loc.Latitude, loc.Longitude); d < bestDist {
			best, bestDist = loc, d
		}
	}

	radius := settings.GeofenceRadiusM
	if best.RadiusM != nil {
		radius = *best.RadiusM
	}

	return Verdict{
		MatchedName:    best.Name,
		Within:         bestDist <= radius,
		DistanceMeters: bestDist,
	}
}

// distanceMeters is the great-circle distance between two points (haversine).
func distanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
