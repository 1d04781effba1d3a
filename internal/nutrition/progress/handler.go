package progress

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	aggregator *Aggregator
}

func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func parseDateParam(r *http.Request, now time.Time) (time.Time, bool) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		return now, true
	}
	parsed, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.daily")
	defer span.End()

	day, ok := parseDateParam(r, handler.aggregator.NowFunc())
	if !ok {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	dp, err := handler.aggregator.DailyProgress(ctx, day)
	if err != nil {
		log.Errorf("failed to compute daily progress: %s", err)
		http.Error(w, "failed to compute progress", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, dp)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weekly")
	defer span.End()

	day, ok := parseDateParam(r, handler.aggregator.NowFunc())
	if !ok {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	wp, err := handler.aggregator.WeeklyProgress(ctx, day)
	if err != nil {
		log.Errorf("failed to compute weekly progress: %s", err)
		http.Error(w, "failed to compute progress", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, wp)
}

func (handler *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.monthly")
	defer span.End()

	day, ok := parseDateParam(r, handler.aggregator.NowFunc())
	if !ok {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	mp, err := handler.aggregator.MonthlyProgress(ctx, day)
	if err != nil {
		log.Errorf("failed to compute monthly progress: %s", err)
		http.Error(w, "failed to compute progress", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, mp)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.streak")
	defer span.End()

	streak, err := handler.aggregator.CurrentStreak(ctx, handler.aggregator.NowFunc())
	if err != nil {
		log.Errorf("failed to compute streak: %s", err)
		http.Error(w, "failed to compute streak", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, map[string]int{"streak": streak})
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal progress response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, payload)
}
