package throttle

import (
	"log/slog"
	"net/http"
	"time"
)

// Handler returns an http.Handler that starts serving requests at least
// interval apart. Requests abandoned by their client before their turn
// receive 503 Service Unavailable and never reach next.
func Handler(interval time.Duration, logFn func() *slog.Logger, next http.Handler) (http.Handler, error) {
	p, err := newPacer(interval, logFn)
	if err != nil {
		return nil, err
	}

	h := func(w http.ResponseWriter, r *http.Request) {
		waited, err := p.wait(r.Context())
		if err != nil {
			if logger := p.logFn(); logger != nil {
				logger.Info("throttle request abandoned", "method", r.Method, "path", r.URL.Path, "remoteaddr", r.RemoteAddr, "error", err)
			}

			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		p.log(waited, r.URL.Path)

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(h), nil
}
