package model

// DerivedStatus is the current presence of one roster member, recomputed
// from the full event log on every query. It has no table.
type DerivedStatus struct {
	WorkerID   string `json:"workerId"`
	Name       string `json:"name"`
	LastAction string `json:"lastAction"`
	LastTime   string `json:"lastTime"`
	Present    bool   `json:"present"`
	Kind       string `json:"kind"`
}
