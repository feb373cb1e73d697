package handlers

import (
	"factorygate.in/factorygate/core"
)

// Handler bundles the collaborators every route needs. The store handle is
// owned by the composition root in web/main.go; handlers only borrow it.
type Handler struct {
	Store      core.Store
	Recorder   *core.Recorder
	Aggregator *core.Aggregator
	Secret     []byte
	TokenTTL   int64
}

func New(store core.Store, notifier core.Notifier, secret []byte, tokenTTL int64) *Handler {
	return &Handler{
		Store:      store,
		Recorder:   core.NewRecorder(store, notifier),
		Aggregator: core.NewAggregator(store),
		Secret:     secret,
		TokenTTL:   tokenTTL,
	}
}
