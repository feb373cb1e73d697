package core

import (
	"context"
	"math"

	"factorygate.in/factorygate/model"
)

// fakeStore is an in-memory Store with error injection for the write paths.
type fakeStore struct {
	settings  Settings
	locations []model.Location
	workers   []model.Worker
	employees []model.Employee
	events    []model.PunchEvent
	attempts  []model.UnauthorizedAttempt

	appendEventErr  error
	appendUnauthErr error
	getEventsErr    error

	appendEventCalls  int
	appendUnauthCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		settings: Settings{
			FactoryLat:      math.NaN(),
			FactoryLng:      math.NaN(),
			GeofenceRadiusM: 80,
			Timezone:        "Asia/Kolkata",
			SupervisorPIN:   "4321",
		},
	}
}

func (f *fakeStore) GetSettings(ctx context.Context) (Settings, error) {
	return f.settings, nil
}

func (f *fakeStore) GetLocations(ctx context.Context) ([]model.Location, error) {
	return f.locations, nil
}

func (f *fakeStore) GetActiveWorkers(ctx context.Context) ([]model.Worker, error) {
	return f.workers, nil
}

func (f *fakeStore) GetActiveEmployees(ctx context.Context) ([]model.Employee, error) {
	return f.employees, nil
}

func (f *fakeStore) AppendEvent(ctx context.Context, event *model.PunchEvent) error {
	f.appendEventCalls++
	if f.appendEventErr != nil {
		return f.appendEventErr
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeStore) AppendUnauthorized(ctx context.Context, attempt *model.UnauthorizedAttempt) error {
	f.appendUnauthCalls++
	if f.appendUnauthErr != nil {
		return f.appendUnauthErr
	}
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeStore) GetAllEvents(ctx context.Context) ([]model.PunchEvent, error) {
	if f.getEventsErr != nil {
		return nil, f.getEventsErr
	}
	return f.events, nil
}

func (f *fakeStore) GetUnauthorized(ctx context.Context) ([]model.UnauthorizedAttempt, error) {
	return f.attempts, nil
}

type fakeNotifier struct {
	infos  []string
	errors []string
	err    error
}

func (f *fakeNotifier) Info(message string) error {
	f.infos = append(f.infos, message)
	return f.err
}

func (f *fakeNotifier) Error(message string) error {
	f.errors = append(f.errors, message)
	return f.err
}
