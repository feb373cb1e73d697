package core

import (
	"context"
	"time"

	"factorygate.in/factorygate/model"
)

// Settings is the factory configuration as read from the settings table.
// FactoryLat/FactoryLng are NaN when unset; with an empty location registry
// that degenerates to "every punch is outside".
type Settings struct {
	FactoryLat      float64
	FactoryLng      float64
	GeofenceRadiusM float64
	Timezone        string
	SupervisorPIN   string
}

// Location resolves the configured timezone, falling back to a fixed IST
// offset if the zone database lookup fails.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// Store is the externally owned row store. Reads are always fresh (no cache,
// no staleness bound); the core only ever appends log rows, never mutates
// roster or settings.
type Store interface {
	GetSettings(ctx context.Context) (Settings, error)
	GetLocations(ctx context.Context) ([]model.Location, error)
	GetActiveWorkers(ctx context.Context) ([]model.Worker, error)
	GetActiveEmployees(ctx context.Context) ([]model.Employee, error)
	AppendEvent(ctx context.Context, event *model.PunchEvent) error
	AppendUnauthorized(ctx context.Context, attempt *model.UnauthorizedAttempt) error
	GetAllEvents(ctx context.Context) ([]model.PunchEvent, error)
	GetUnauthorized(ctx context.Context) ([]model.UnauthorizedAttempt, error)
}

// Notifier is the side channel for unauthorized-punch alerts. Failures are
// logged and swallowed; alerts must never affect the punch outcome.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

// CheckSupervisorPin compares the submitted PIN against the configured
// supervisor secret. No lockout, no hashing; the PIN only gates the
// presence report.
func CheckSupervisorPin(ctx context.Context, store Store, pin string) (bool, error) {
	settings, err := store.GetSettings(ctx)
	if err != nil {
		return false, &InfrastructureError{Op: "load settings", Err: err}
	}
	return pin != "" && pin == settings.SupervisorPIN, nil
}
