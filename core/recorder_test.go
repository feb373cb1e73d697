package core

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/utils"
)

func gateARegistry() []model.Location {
	return []model.Location{{Name: "Gate A", Latitude: 19.0, Longitude: 72.9}}
}

func validPunch() PunchRequest {
	return PunchRequest{
		WorkerID:  "W1",
		Name:      "Ramesh",
		Action:    model.ActionLogin,
		Latitude:  19.0,
		Longitude: 72.9,
		UserAgent: "test-agent",
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
}

func TestRecordPunchAuthorized(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()

	r := NewRecorder(store, nil)
	r.Now = fixedNow

	result, err := r.RecordPunch(context.Background(), validPunch())
	require.NoError(t, err)

	assert.True(t, result.Authorized)
	assert.Equal(t, "Gate A", result.MatchedLocation)
	assert.InDelta(t, 0, result.DistanceMeters, 0.001)

	require.Len(t, store.events, 1)
	assert.Zero(t, store.appendUnauthCalls)

	event := store.events[0]
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "W1", event.WorkerID)
	assert.Equal(t, model.ActionLogin, event.Action)
	assert.True(t, event.WithinGeofence)
	assert.Equal(t, "Gate A", event.MatchedLocation)
	assert.Equal(t, model.KindWorker, event.Kind)

	// 09:30 UTC is 15:00 IST
	ist := store.settings.Location()
	assert.Equal(t, utils.FormatTimestamp(fixedNow(), ist), event.Timestamp)
	assert.Equal(t, "31/08/2026, 15:00:00", event.Timestamp)
}

func TestRecordPunchOutsideGeofence(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()
	notifier := &fakeNotifier{}

	r := NewRecorder(store, notifier)
	r.Now = fixedNow

	req := validPunch()
	req.Latitude = 19.0045 // roughly 500m north of Gate A

	result, err := r.RecordPunch(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, result.Authorized)
	assert.Greater(t, result.DistanceMeters, 400.0)
	assert.Equal(t, "Gate A", result.MatchedLocation)

	// the punch is still logged, plus exactly one unauthorized row
	require.Len(t, store.events, 1)
	assert.False(t, store.events[0].WithinGeofence)
	require.Len(t, store.attempts, 1)

	attempt := store.attempts[0]
	assert.Equal(t, UnauthorizedReason, attempt.Reason)
	assert.Equal(t, "W1", attempt.WorkerID)
	assert.Equal(t, store.events[0].Timestamp, attempt.Timestamp)
	assert.InDelta(t, result.DistanceMeters, attempt.DistanceM, 0.001)

	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "W1")
}

func TestRecordPunchSecondaryWriteFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()
	store.appendUnauthErr = errors.New("sheet full")

	r := NewRecorder(store, nil)

	req := validPunch()
	req.Latitude = 19.0045

	result, err := r.RecordPunch(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Authorized)

	// primary event is durable, secondary failure never surfaces
	assert.Len(t, store.events, 1)
	assert.Equal(t, 1, store.appendUnauthCalls)
}

func TestRecordPunchPrimaryWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()
	store.appendEventErr = errors.New("connection reset")

	r := NewRecorder(store, nil)

	_, err := r.RecordPunch(context.Background(), validPunch())

	var infraErr *InfrastructureError
	require.ErrorAs(t, err, &infraErr)
	assert.Zero(t, store.appendUnauthCalls)
}

func TestRecordPunchValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PunchRequest)
		wantField string
	}{
		{"missing worker id", func(r *PunchRequest) { r.WorkerID = "" }, "workerId"},
		{"missing name", func(r *PunchRequest) { r.Name = "" }, "name"},
		{"missing action", func(r *PunchRequest) { r.Action = "" }, "action"},
		{"unknown action", func(r *PunchRequest) { r.Action = "BREAK" }, "action"},
		{"NaN latitude", func(r *PunchRequest) { r.Latitude = math.NaN() }, "lat"},
		{"infinite longitude", func(r *PunchRequest) { r.Longitude = math.Inf(1) }, "lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.locations = gateARegistry()
			r := NewRecorder(store, nil)

			req := validPunch()
			tt.mutate(&req)

			_, err := r.RecordPunch(context.Background(), req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)

			// nothing may be persisted on a validation failure
			assert.Zero(t, store.appendEventCalls)
			assert.Zero(t, store.appendUnauthCalls)
		})
	}
}

func TestRecordPunchAccuracyDefaultsToDistance(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()
	r := NewRecorder(store, nil)

	req := validPunch()
	req.Latitude = 19.0045

	result, err := r.RecordPunch(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, store.events, 1)
	assert.InDelta(t, result.DistanceMeters, store.events[0].AccuracyM, 0.001)

	store2 := newFakeStore()
	store2.locations = gateARegistry()
	r2 := NewRecorder(store2, nil)

	req2 := validPunch()
	req2.Accuracy = utils.Ptr(12.5)

	_, err = r2.RecordPunch(context.Background(), req2)
	require.NoError(t, err)
	require.Len(t, store2.events, 1)
	assert.Equal(t, 12.5, store2.events[0].AccuracyM)
}

func TestRecordPunchEmployeeKind(t *testing.T) {
	store := newFakeStore()
	store.locations = gateARegistry()
	r := NewRecorder(store, nil)

	req := validPunch()
	req.Kind = model.KindEmployee

	_, err := r.RecordPunch(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, store.events, 1)
	assert.Equal(t, model.KindEmployee, store.events[0].Kind)
}

func TestCheckSupervisorPin(t *testing.T) {
	store := newFakeStore()

	ok, err := CheckSupervisorPin(context.Background(), store, "4321")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckSupervisorPin(context.Background(), store, "1111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckSupervisorPin(context.Background(), store, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
