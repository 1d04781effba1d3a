package achievements

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=achievements_mocks_test.go -package=achievements_test

type achievementsRepo interface {
	GetUnlocked(ctx context.Context) ([]Achievement, error)
}

type streakSource interface {
	CurrentStreak(ctx context.Context, from time.Time) (int, error)
}

type Handler struct {
	repo    achievementsRepo
	streaks streakSource
	engine  *Engine
}

func NewHandler(repo achievementsRepo, streaks streakSource, engine *Engine) *Handler {
	return &Handler{
		repo:    repo,
		streaks: streaks,
		engine:  engine,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.list")
	defer span.End()

	unlocked, err := handler.repo.GetUnlocked(ctx)
	if err != nil {
		log.Errorf("failed to get unlocked achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	unlockedJson, err := json.Marshal(unlocked)
	if err != nil {
		log.Errorf("failed to marshal achievements: %s", err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, unlockedJson)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.progress")
	defer span.End()

	unlocked, err := handler.repo.GetUnlocked(ctx)
	if err != nil {
		log.Errorf("failed to get unlocked achievements: %s", err)
		http.Error(w, "failed to get achievement progress", http.StatusInternalServerError)
		return
	}

	streak, err := handler.streaks.CurrentStreak(ctx, time.Now())
	if err != nil {
		log.Errorf("failed to get current streak: %s", err)
		http.Error(w, "failed to get achievement progress", http.StatusInternalServerError)
		return
	}

	summary := Summarize(handler.engine.CatalogSize(), unlocked, streak)

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal achievement progress: %s", err)
		http.Error(w, "failed to get achievement progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}
