package farm

import (
	"log"
	"net/http"
)

// response is a canned reply. A zero status leaves the 200 implicit.
type response struct {
	status int
	header [][2]string
	body   []byte
}

var (
	overviewResponse = response{body: []byte("This is the OVERVIEW")}
	productResponse  = response{body: []byte("This is the PRODUCT")}
	notFoundResponse = response{
		status: http.StatusNotFound,
		header: [][2]string{
			{"Content-type", "text/html"},
			{"my-own-header", "Hello world!"},
		},
		body: []byte("<h1>Page not found.</h1>"),
	}
)

// Dispatcher maps a request target to one of a fixed set of responses.
//
// The target is compared verbatim: no query stripping, no trailing-slash or
// case folding. "/api?x=1" is not "/api".
type Dispatcher struct {
	routes map[string]response
	logger *log.Logger
}

// NewDispatcher builds the route table around doc.
func NewDispatcher(doc *Document, logger *log.Logger) *Dispatcher {
	if doc == nil {
		panic("farm.NewDispatcher: doc is nil")
	}
	if logger == nil {
		logger = log.Default()
	}

	api := response{
		status: http.StatusOK,
		header: [][2]string{{"Content-type", "application/json"}},
		body:   doc.Raw,
	}

	return &Dispatcher{
		routes: map[string]response{
			"/":         overviewResponse,
			"/overview": overviewResponse,
			"/product":  productResponse,
			"/api":      api,
		},
		logger: logger,
	}
}

func (d *Dispatcher) resolve(target string) response {
	if rsp, ok := d.routes[target]; ok {
		return rsp
	}
	return notFoundResponse
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := requestTarget(r)
	d.logger.Println(target)

	rsp := d.resolve(target)
	for _, kv := range rsp.header {
		w.Header().Set(kv[0], kv[1])
	}
	if rsp.status != 0 {
		w.WriteHeader(rsp.status)
	}
	_, _ = w.Write(rsp.body)
}

// requestTarget returns the target as sent on the request line.
// Requests built in-process have no RequestURI, so fall back to the URL.
func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
