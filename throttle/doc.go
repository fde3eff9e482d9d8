// Package throttle paces HTTP traffic so that consecutive requests start no
// less than a fixed interval apart.
//
// # Outbound
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		200*time.Millisecond, // minimum gap between requests
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// # Inbound
//
// [Handler] applies the same pacing to a server:
//
//	h, err := throttle.Handler(100*time.Millisecond, nil, mux)
//
// Concurrent requests queue for their turn. A request whose context ends
// while queued or waiting is abandoned without consuming a turn.
package throttle
