package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ReadinessTimeout bounds the checks behind ReadinessHandler and
// CheckHandler. DetailedHandler relies on the Aggregator's own timeout.
const ReadinessTimeout = 5 * time.Second

// HealthResponse is the body served by DetailedHandler. Checks keep the
// Aggregator's registration order.
type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Checks    []CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the JSON form of one Report.
type CheckResponse struct {
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func newCheckResponse(name string, r Result) CheckResponse {
	resp := CheckResponse{
		Name:     name,
		Status:   r.Status.String(),
		Message:  r.Message,
		Duration: r.Duration.String(),
		Details:  r.Details,
	}
	if r.Error != nil {
		resp.Error = r.Error.Error()
	}
	return resp
}

// httpStatus maps a Status to a response code. Degraded caches still serve
// correct results, only slower, so they stay 200.
func httpStatus(s Status) int {
	if s == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// LivenessHandler answers 200 "OK" without running any checks.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReadinessHandler runs every check in agg and answers with the overall
// status as plain text: "OK", "DEGRADED" or "UNHEALTHY" (503).
func ReadinessHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		status := OverallStatus(agg.CheckAll(ctx))

		body := "OK"
		switch status {
		case StatusDegraded:
			body = "DEGRADED"
		case StatusUnhealthy:
			body = "UNHEALTHY"
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(httpStatus(status))
		_, _ = w.Write([]byte(body))
	}
}

// DetailedHandler runs every check in agg and serves a HealthResponse.
func DetailedHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports := agg.CheckAll(r.Context())
		status := OverallStatus(reports)

		resp := HealthResponse{
			Status:    status.String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make([]CheckResponse, 0, len(reports)),
		}
		for _, rep := range reports {
			resp.Checks = append(resp.Checks, newCheckResponse(rep.Name, rep.Result))
		}

		writeJSON(w, httpStatus(status), resp)
	}
}

// CheckHandler runs the single checker named by the "name" path value, as
// registered by RegisterHandlers. Unknown names answer 404.
func CheckHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		name := r.PathValue("name")
		result, err := agg.Check(ctx, name)
		if errors.Is(err, ErrCheckerNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, httpStatus(result.Status), newCheckResponse(name, result))
	}
}

// RegisterHandlers mounts the health endpoints on mux:
//
//	GET /healthz        LivenessHandler
//	GET /readyz         ReadinessHandler
//	GET /health         DetailedHandler
//	GET /health/{name}  CheckHandler
func RegisterHandlers(mux *http.ServeMux, agg *Aggregator) {
	mux.HandleFunc("GET /healthz", LivenessHandler())
	mux.HandleFunc("GET /readyz", ReadinessHandler(agg))
	mux.HandleFunc("GET /health", DetailedHandler(agg))
	mux.HandleFunc("GET /health/{name}", CheckHandler(agg))
}
