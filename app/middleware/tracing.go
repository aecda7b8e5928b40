package middleware

import (
	"fmt"
	"net/http"

	"github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"
	"github.com/openzipkin/zipkin-go/reporter"
	httpreporter "github.com/openzipkin/zipkin-go/reporter/http"
)

// Tracing reports one zipkin span per request.
type Tracing struct {
	reporter   reporter.Reporter
	middleware func(http.Handler) http.Handler
}

// NewTracing reports spans to the zipkin collector at address (host:port).
func NewTracing(serviceName, address, hostPort string) (*Tracing, error) {
	rep := httpreporter.NewReporter("http://" + address + "/api/v2/spans")
	return newTracing(serviceName, hostPort, rep)
}

func newTracing(serviceName, hostPort string, rep reporter.Reporter) (*Tracing, error) {
	endpoint, err := zipkin.NewEndpoint(serviceName, hostPort)
	if err != nil {
		rep.Close()
		return nil, fmt.Errorf("unable to create local endpoint: %w", err)
	}

	tracer, err := zipkin.NewTracer(rep, zipkin.WithLocalEndpoint(endpoint))
	if err != nil {
		rep.Close()
		return nil, fmt.Errorf("unable to create tracer: %w", err)
	}

	return &Tracing{
		reporter:   rep,
		middleware: zipkinhttp.NewServerMiddleware(tracer, zipkinhttp.TagResponseSize(true)),
	}, nil
}

// Middleware wraps a handler in a server span.
func (t *Tracing) Middleware(next http.Handler) http.Handler {
	return t.middleware(next)
}

// Close flushes pending spans.
func (t *Tracing) Close() error {
	return t.reporter.Close()
}
