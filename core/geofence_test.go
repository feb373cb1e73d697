package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/utils"
)

var testSettings = Settings{
	FactoryLat:      math.NaN(),
	FactoryLng:      math.NaN(),
	GeofenceRadiusM: 80,
	Timezone:        "Asia/Kolkata",
}

func TestResolveNearestLocation(t *testing.T) {
	registry := []model.Location{
		{Name: "Gate A", Latitude: 19.0, Longitude: 72.9},
		{Name: "Gate B", Latitude: 19.1, Longitude: 72.9},
		{Name: "Warehouse", Latitude: 19.0, Longitude: 73.0, RadiusM: utils.Ptr(150.0)},
	}

	tests := []struct {
		name       string
		lat, lng   float64
		wantMatch  string
		wantWithin bool
	}{
		{
			name:       "at gate A center",
			lat:        19.0,
			lng:        72.9,
			wantMatch:  "Gate A",
			wantWithin: true,
		},
		{
			name:       "near gate B",
			lat:        19.1001,
			lng:        72.9,
			wantMatch:  "Gate B",
			wantWithin: true,
		},
		{
			name:       "500m from everything",
			lat:        19.0045,
			lng:        72.9,
			wantMatch:  "Gate A",
			wantWithin: false,
		},
		{
			name:       "warehouse override admits 100m",
			lat:        19.0009,
			lng:        73.0,
			wantMatch:  "Warehouse",
			wantWithin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Resolve(tt.lat, tt.lng, registry, testSettings)
			assert.Equal(t, tt.wantMatch, v.MatchedName)
			assert.Equal(t, tt.wantWithin, v.Within)
		})
	}
}

func TestResolveBoundaryIsInclusive(t *testing.T) {
	center := model.Location{Name: "Gate A", Latitude: 19.0, Longitude: 72.9}
	probeLat, probeLng := 19.0, 72.9007

	// make the radius exactly the probe distance
	exact := distanceMeters(center.Latitude, center.Longitude, probeLat, probeLng)
	center.RadiusM = &exact

	v := Resolve(probeLat, probeLng, []model.Location{center}, testSettings)
	assert.True(t, v.Within)
	assert.Equal(t, exact, v.DistanceMeters)
}

func TestResolveTieKeepsRegistryOrder(t *testing.T) {
	// two registry rows on the same point, so the distances tie exactly
	registry := []model.Location{
		{Name: "North Gate", Latitude: 19.001, Longitude: 72.9},
		{Name: "South Gate", Latitude: 19.001, Longitude: 72.9},
	}

	v := Resolve(19.0012, 72.9, registry, testSettings)
	assert.Equal(t, "North Gate", v.MatchedName)
}

func TestResolveFallbackPoint(t *testing.T) {
	settings := testSettings
	settings.FactoryLat = 19.0
	settings.FactoryLng = 72.9

	inside := Resolve(19.0, 72.9, nil, settings)
	assert.True(t, inside.Within)
	assert.Empty(t, inside.MatchedName)
	assert.InDelta(t, 0, inside.DistanceMeters, 0.001)

	outside := Resolve(19.0045, 72.9, nil, settings)
	assert.False(t, outside.Within)
	assert.Greater(t, outside.DistanceMeters, settings.GeofenceRadiusM)
}

func TestResolveFallbackEquivalentToSingleLocation(t *testing.T) {
	settings := testSettings
	settings.FactoryLat = 19.0
	settings.FactoryLng = 72.9

	registry := []model.Location{{Name: "Factory", Latitude: 19.0, Longitude: 72.9}}

	probes := [][2]float64{
		{19.0, 72.9},
		{19.0003, 72.9001},
		{19.0045, 72.91},
	}
	for _, p := range probes {
		viaFallback := Resolve(p[0], p[1], nil, settings)
		viaRegistry := Resolve(p[0], p[1], registry, settings)
		assert.Equal(t, viaRegistry.Within, viaFallback.Within)
		assert.InDelta(t, viaRegistry.DistanceMeters, viaFallback.DistanceMeters, 0.001)
	}
}

func TestResolveNoFallbackAlwaysOutside(t *testing.T) {
	v := Resolve(19.0, 72.9, nil, testSettings)
	assert.False(t, v.Within)
	assert.Empty(t, v.MatchedName)
	assert.True(t, math.IsInf(v.DistanceMeters, 1))
}

func TestDistanceMeters(t *testing.T) {
	// one degree of longitude at the equator
	d := distanceMeters(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 1)

	assert.InDelta(t, 0, distanceMeters(19.0, 72.9, 19.0, 72.9), 0.0001)
}
