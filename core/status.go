package core

import (
	"context"
	"time"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/utils"
)

// Aggregator derives the live presence view from the accumulated event log.
// It holds no state; every call re-reads the log and the roster.
type Aggregator struct {
	Store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{Store: store}
}

type lastPunch struct {
	action string
	raw    string
	at     time.Time
	parsed bool
}

// ComputeStatus returns one row per active roster member, workers first.
// The most recent event per subject wins, compared as parsed date-times in
// the factory timezone. Subjects with history but no roster entry are
// scanned and dropped; roster members with no history report NONE.
func (a *Aggregator) ComputeStatus(ctx context.Context) ([]model.DerivedStatus, error) {
	settings, err := a.Store.GetSettings(ctx)
	if err != nil {
		return nil, &InfrastructureError{Op: "load settings", Err: err}
	}
	events, err := a.Store.GetAllEvents(ctx)
	if err != nil {
		return nil, &InfrastructureError{Op: "load events", Err: err}
	}
	workers, err := a.Store.GetActiveWorkers(ctx)
	if err != nil {
		return nil, &InfrastructureError{Op: "load workers", Err: err}
	}
	employees, err := a.Store.GetActiveEmployees(ctx)
	if err != nil {
		return nil, &InfrastructureError{Op: "load employees", Err: err}
	}

	loc := settings.Location()
	byID := utils.GroupBy(events, func(ev model.PunchEvent) string {
		return ev.WorkerID
	})

	statuses := make([]model.DerivedStatus, 0, len(workers)+len(employees))
	for _, w := range workers {
		statuses = append(statuses, derive(w.WorkerID, w.Name, model.KindWorker, byID[w.WorkerID], loc))
	}
	for _, e := range employees {
		statuses = append(statuses, derive(e.EmpID, e.Name, model.KindEmployee, byID[e.EmpID], loc))
	}
	return statuses, nil
}

// laterThan reports whether candidate strictly postdates current; on equal
// timestamps the earlier-seen event keeps its slot. Unparsable timestamps
// never displace a parsable one.
func laterThan(candidate, current lastPunch) bool {
	if candidate.parsed && current.parsed {
		return candidate.at.After(current.at)
	}
	return candidate.parsed && !current.parsed
}

func derive(id, name, kind string, events []model.PunchEvent, loc *time.Location) model.DerivedStatus {
	var current lastPunch
	seen := false
	for _, ev := range events {
		candidate := lastPunch{action: ev.Action, raw: ev.Timestamp}
		if t, err := utils.ParseTimestamp(ev.Timestamp, loc); err == nil {
			candidate.at = t
			candidate.parsed = true
		}
		if !seen || laterThan(candidate, current) {
			current = candidate
			seen = true
		}
	}

	if !seen {
		return model.DerivedStatus{
			WorkerID:   id,
			Name:       name,
			LastAction: model.ActionNone,
			LastTime:   "",
			Present:    false,
			Kind:       kind,
		}
	}
	return model.DerivedStatus{
		WorkerID:   id,
		Name:       name,
		LastAction: current.action,
		LastTime:   current.raw,
		Present:    current.action == model.ActionLogin,
		Kind:       kind,
	}
}
