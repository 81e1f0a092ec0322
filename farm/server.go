package farm

import (
	"fmt"
	"log"
	"net"
	"net/http"

	"golang.org/x/time/rate"
)

// Address is the fixed listen address.
const Address = "127.0.0.1:8000"

// Options configures Run.
type Options struct {
	// DataPath is the JSON file served on /api.
	DataPath string

	// Listen opens the listener. Defaults to TCP on Address.
	Listen func() (net.Listener, error)

	// Limit and Burst configure the request rate limiter.
	// A zero Limit disables it.
	Limit rate.Limit
	Burst int

	Logger *log.Logger
}

// Handler wraps a Dispatcher for doc with the request log and rate limiter.
func Handler(doc *Document, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	limit, burst := opts.Limit, opts.Burst
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}

	var h http.Handler = NewDispatcher(doc, logger)
	h = withRateLimit(h, limit, burst, logger)
	return withRequestLog(h, logger)
}

// Run loads the data file, then listens and serves until the listener fails.
// A load error is returned before the listener is opened.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Listen == nil {
		opts.Listen = func() (net.Listener, error) {
			return net.Listen("tcp", Address)
		}
	}

	doc, err := LoadDocument(opts.DataPath)
	if err != nil {
		return err
	}

	ln, err := opts.Listen()
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	srv := &http.Server{
		Handler:  Handler(doc, opts),
		ErrorLog: opts.Logger,
	}

	opts.Logger.Printf("Listening to requests on port %s", listenPort(ln.Addr()))
	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func listenPort(addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return port
}
