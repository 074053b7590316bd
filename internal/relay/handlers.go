package relay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/beacon/pkg/logger"
	"github.com/dmitrymomot/beacon/pkg/pageview"
)

func (rl *Relay) handlePixel(w http.ResponseWriter, r *http.Request) {
	rl.track(r.Context(), pageview.NewRequestEnvironment(r))

	h := w.Header()
	h.Set("Content-Type", "image/gif")
	h.Set("Content-Length", strconv.Itoa(len(pixel)))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pixel)
}

// handleCollect accepts any content type: navigator.sendBeacon posts text/plain.
func (rl *Relay) handleCollect(w http.ResponseWriter, r *http.Request) {
	snap, err := pageview.SnapshotFromJSON(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		rl.log.DebugContext(r.Context(), "rejected snapshot", logger.Error(err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rl.track(r.Context(), pageview.StaticEnvironment(snap))

	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusAccepted)
}
