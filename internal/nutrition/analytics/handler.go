package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type analyticsSource interface {
	Analyze(ctx context.Context, window progress.DateRange) (*AnalyticsData, error)
}

type Handler struct {
	analyzer analyticsSource
}

func NewHandler(analyzer analyticsSource) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

const dateParamLayout = "2006-01-02"

// resolveWindow reads the range from the query: either a named preset via
// "range", or an explicit "from"/"to" pair (to is exclusive, defaults to now).
func resolveWindow(r *http.Request, now time.Time) (progress.DateRange, error) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam == "" && toParam == "" {
		return progress.ResolvePreset(r.URL.Query().Get("range"), now)
	}

	window := progress.DateRange{End: now}
	if fromParam != "" {
		from, err := time.Parse(dateParamLayout, fromParam)
		if err != nil {
			return progress.DateRange{}, err
		}
		window.Start = from
	}
	if toParam != "" {
		to, err := time.Parse(dateParamLayout, toParam)
		if err != nil {
			return progress.DateRange{}, err
		}
		window.End = to
	}
	return window, nil
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.get")
	defer span.End()

	window, err := resolveWindow(r, time.Now())
	if err != nil {
		http.Error(w, "invalid range", http.StatusBadRequest)
		return
	}

	data, err := handler.analyzer.Analyze(ctx, window)
	if err != nil {
		log.Errorf("get analytics: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("get analytics, write response: %s", err)
	}
}
