package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/franchise-ledger/internal/logging"
)

const pingTimeout = 2 * time.Second

// pinger reports whether the ledger store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Store pinger
}

func NewHandler(store pinger) Handler {
	return Handler{Store: store}
}

// Handler answers 200 when the store responds and 503 otherwise.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stop := logData.AddTiming("storePingMs")
	err := h.Store.Ping(ctx)
	stop()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
