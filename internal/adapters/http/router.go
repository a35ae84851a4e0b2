// Package httpadapter exposes the scoring pipeline over HTTP.
package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finsight/zscore-service/internal/core/domain"
	"github.com/finsight/zscore-service/internal/core/ports"
	"github.com/finsight/zscore-service/internal/observability/metrics"
)

type RouterConfig struct {
	RateLimitRPS        float64
	RateLimitBurst      int
	MaxInFlight         int
	BackpressureTimeout time.Duration
}

type Router struct {
	scores  ports.ZScoreService
	metrics *metrics.HTTPServerMetrics
	cfg     RouterConfig
}

func NewRouter(scores ports.ZScoreService, m *metrics.HTTPServerMetrics, cfg RouterConfig) *Router {
	return &Router{
		scores:  scores,
		metrics: m,
		cfg:     cfg,
	}
}

func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(accessLogMiddleware)
	if rt.metrics != nil {
		r.Use(metricsMiddleware(rt.metrics))
	}
	if rt.cfg.RateLimitRPS > 0 {
		r.Use(rateLimitMiddleware(rt.cfg.RateLimitRPS, rt.cfg.RateLimitBurst))
	}
	if rt.cfg.MaxInFlight > 0 {
		r.Use(func(next http.Handler) http.Handler {
			return backpressureMiddleware(next, rt.cfg.MaxInFlight, rt.cfg.BackpressureTimeout)
		})
	}

	r.Get("/", rt.root)
	r.Get("/health", rt.health)
	r.Get("/zscore/{company}", rt.zscoreByPath)
	r.Post("/zscore", rt.zscoreByBody)
	if rt.metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	return r
}

func (rt *Router) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "zscore-service",
		"message": "Altman Z-Score scoring for US filers. GET /zscore/{company} or POST /zscore.",
	})
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) zscoreByPath(w http.ResponseWriter, r *http.Request) {
	rt.compute(w, r, chi.URLParam(r, "company"))
}

func (rt *Router) zscoreByBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Company string `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}
	if strings.TrimSpace(req.Company) == "" {
		writeError(w, http.StatusBadRequest, "company is required", "")
		return
	}
	rt.compute(w, r, req.Company)
}

func (rt *Router) compute(w http.ResponseWriter, r *http.Request, company string) {
	start := time.Now()

	result, err := rt.scores.Compute(r.Context(), company)
	if err != nil {
		rt.recordPipeline(outcomeForError(err), nil, err, time.Since(start))
		writeDomainError(w, err)
		return
	}

	rt.recordPipeline("ok", result, nil, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) recordPipeline(outcome string, result *domain.ZScoreResult, err error, elapsed time.Duration) {
	if rt.metrics == nil {
		return
	}
	rt.metrics.ObservePipeline(outcome, elapsed)
	if result != nil {
		rt.metrics.RecordZone(string(result.Zone))
	}
	var missing *domain.MissingFieldsError
	if asMissingFields(err, &missing) {
		for _, field := range missing.Missing {
			rt.metrics.RecordMissingField(string(field))
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	body := map[string]string{"error": message}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}
