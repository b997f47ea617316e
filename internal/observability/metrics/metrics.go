// Package metrics emits the web front's standard metrics through a statsd.Sink.
package metrics

import (
	"strconv"
	"time"

	apperrors "github.com/bluelatex/blue-web/internal/errors"
	obserrors "github.com/bluelatex/blue-web/internal/observability/errors"
	"github.com/bluelatex/blue-web/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// EmitGateDecision counts one session gate evaluation.
func EmitGateDecision(sink statsd.Sink, routeName, action string, authenticated bool) {
	if sink == nil {
		return
	}
	sink.Count("gate.decision", 1, map[string]string{
		"route":         routeName,
		"action":        action,
		"authenticated": strconv.FormatBool(authenticated),
	})
}

// BackendCall describes one call to the blue-latex backend.
type BackendCall struct {
	Operation string
	Duration  time.Duration
	Err       error
}

// EmitBackendCall records the outcome and latency of a backend call.
func EmitBackendCall(sink statsd.Sink, in BackendCall) {
	if sink == nil {
		return
	}

	tags := map[string]string{"operation": in.Operation, "result": ResultSuccess}
	if in.Err != nil {
		tags["result"] = ResultError
		if code := apperrors.GetCode(in.Err); code != "" {
			tags["error_class"] = string(code)
		} else {
			tags["error_class"] = obserrors.Classify(in.Err)
		}
	}

	sink.Count("backend.call", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, tags)
	}
}

// EmitViewRegistrySize reports how many paper list views are held in memory.
func EmitViewRegistrySize(sink statsd.Sink, n int) {
	if sink == nil {
		return
	}
	sink.Gauge("papers.views", float64(n), nil)
}
