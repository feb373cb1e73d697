package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/utils"
)

// UnauthorizedReason is the reason recorded on every out-of-geofence row.
const UnauthorizedReason = "Location outside factory"

// PunchRequest is a validated-by-Recorder punch submission. Accuracy is a
// pointer because clients without a GPS accuracy reading omit it; the
// measured geofence distance is recorded in its place.
type PunchRequest struct {
	WorkerID  string
	Name      string
	Kind      string
	Action    string
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	UserAgent string
}

// PunchResult is returned for every accepted punch, authorized or not.
// An unauthorized punch is still recorded; the policy is log everything,
// flag suspicious.
type PunchResult struct {
	Authorized      bool
	DistanceMeters  float64
	MatchedLocation string
	Timestamp       string
}

// Recorder validates punches, resolves them against the geofence registry
// and appends them to the event log.
type Recorder struct {
	Store    Store
	Notifier Notifier

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewRecorder(store Store, notifier Notifier) *Recorder {
	return &Recorder{Store: store, Notifier: notifier, Now: time.Now}
}

// RecordPunch runs the full punch pipeline: validate, fresh-read settings and
// locations, resolve the geofence, append exactly one PunchEvent, and on an
// out-of-geofence verdict additionally append one UnauthorizedAttempt.
// The secondary write is best effort: its failure is logged and swallowed,
// because the primary event is already durable by then.
func (r *Recorder) RecordPunch(ctx context.Context, req PunchRequest) (PunchResult, error) {
	if err := validatePunch(req); err != nil {
		return PunchResult{}, err
	}

	settings, err := r.Store.GetSettings(ctx)
	if err != nil {
		return PunchResult{}, &InfrastructureError{Op: "load settings", Err: err}
	}
	locations, err := r.Store.GetLocations(ctx)
	if err != nil {
		return PunchResult{}, &InfrastructureError{Op: "load locations", Err: err}
	}

	verdict := Resolve(req.Latitude, req.Longitude, locations, settings)

	now := r.Now
	if now == nil {
		now = time.Now
	}
	timestamp := utils.FormatTimestamp(now(), settings.Location())

	accuracy := verdict.DistanceMeters
	if req.Accuracy != nil {
		accuracy = *req.Accuracy
	}

	kind := req.Kind
	if kind == "" {
		kind = model.KindWorker
	}

	event := &model.PunchEvent{
		ID:              uuid.New().String(),
		Timestamp:       timestamp,
		WorkerID:        req.WorkerID,
		Name:            req.Name,
		Action:          req.Action,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		AccuracyM:       accuracy,
		WithinGeofence:  verdict.Within,
		MatchedLocation: verdict.MatchedName,
		UserAgent:       req.UserAgent,
		Kind:            kind,
	}

	if err := r.Store.AppendEvent(ctx, event); err != nil {
		return PunchResult{}, &InfrastructureError{Op: "append punch event", Err: err}
	}

	if !verdict.Within {
		r.recordUnauthorized(ctx, req, event, verdict)
	}

	return PunchResult{
		Authorized:      verdict.Within,
		DistanceMeters:  verdict.DistanceMeters,
		MatchedLocation: verdict.MatchedName,
		Timestamp:       timestamp,
	}, nil
}

func (r *Recorder) recordUnauthorized(ctx context.Context, req PunchRequest, event *model.PunchEvent, verdict Verdict) {
	attempt := &model.UnauthorizedAttempt{
		ID:        uuid.New().String(),
		Timestamp: event.Timestamp,
		WorkerID:  req.WorkerID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		AccuracyM: event.AccuracyM,
		DistanceM: verdict.DistanceMeters,
		Reason:    UnauthorizedReason,
		UserAgent: req.UserAgent,
	}
	if err := r.Store.AppendUnauthorized(ctx, attempt); err != nil {
		log.Printf("[ERROR] failed to write unauthorized row for %s: %v", req.WorkerID, err)
	}

	if r.Notifier != nil {
		msg := fmt.Sprintf("Unauthorized punch: %s (%s) %s at %.0fm from %s",
			req.Name, req.WorkerID, req.Action, verdict.DistanceMeters, displayName(verdict.MatchedName))
		if err := r.Notifier.Error(msg); err != nil {
			log.Printf("[ERROR] failed to send unauthorized alert: %v", err)
		}
	}
}

func displayName(name string) string {
	if name == "" {
		return "factory"
	}
	return name
}

func validatePunch(req PunchRequest) error {
	if req.WorkerID == "" {
		return &ValidationError{Field: "workerId", Message: "required"}
	}
	if req.Name == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}
	switch req.Action {
	case model.ActionLogin, model.ActionLogout:
	case "":
		return &ValidationError{Field: "action", Message: "required"}
	default:
		return &ValidationError{Field: "action", Message: "must be LOGIN or LOGOUT"}
	}
	if !isFinite(req.Latitude) {
		return &ValidationError{Field: "lat", Message: "must be a finite number"}
	}
	if !isFinite(req.Longitude) {
		return &ValidationError{Field: "lng", Message: "must be a finite number"}
	}
	return nil
}
