package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/metrics"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	GetActive(ctx context.Context) (*NutritionGoals, error)
	SetActive(ctx context.Context, g NutritionGoals) error
}

type Handler struct {
	repo    goalsRepo
	metrics *metrics.Manager
}

func NewHandler(repo goalsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	g, err := handler.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrGoalsNotSet) {
			http.Error(w, "no goals set", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get active goals: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(g)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

// HandleSet replaces the active goals record with the submitted one.
func (handler *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var g NutritionGoals
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		log.Tracef("set goals, unmarshal json params: %s", err)
		http.Error(w, "set goals failed", http.StatusBadRequest)
		return
	}

	if g.DailyCalorieGoal <= 0 {
		http.Error(w, "error, daily calorie goal must be positive", http.StatusBadRequest)
		return
	}

	g.UpdatedAt = time.Now()

	if err := handler.repo.SetActive(ctx, g); err != nil {
		log.Errorf("failed to set active goals: %s", err)
		http.Error(w, "failed to set goals", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterGoalsUpdated.Inc()

	goalsJson, err := json.Marshal(g)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to set goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

// HandleRecommend computes goals from the posted profile without saving them.
func (handler *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.recommend")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("recommend goals, unmarshal json params: %s", err)
		http.Error(w, "recommend goals failed", http.StatusBadRequest)
		return
	}

	recommended, err := CalculateGoals(profile, time.Now())
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to calculate goals: %s", err)
		http.Error(w, "failed to calculate goals", http.StatusInternalServerError)
		return
	}

	recommendedJson, err := json.Marshal(recommended)
	if err != nil {
		log.Errorf("failed to marshal recommended goals: %s", err)
		http.Error(w, "failed to calculate goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recommendedJson)
}
