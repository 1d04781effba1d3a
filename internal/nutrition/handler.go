package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type mealTracker interface {
	LogMeal(ctx context.Context, record records.AnalysisRecord) (*LogMealResult, error)
	DeleteRecord(ctx context.Context, id string) error
}

type DeleteRecordResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	tracker mealTracker
}

func NewHandler(tracker mealTracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

func (handler *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logMeal")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var record records.AnalysisRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Errorf("log meal, unmarshal json params: %s", err)
		http.Error(w, "log meal failed", http.StatusBadRequest)
		return
	}

	if record.ItemName == "" {
		http.Error(w, "error, item name empty", http.StatusBadRequest)
		return
	}
	if record.Calories < 0 || record.Protein < 0 || record.Fat < 0 || record.Carbs < 0 {
		http.Error(w, "error, negative nutrition values", http.StatusBadRequest)
		return
	}

	result, err := handler.tracker.LogMeal(ctx, record)
	if err != nil {
		log.Errorf("failed to log meal [%s]: %s", record.ItemName, err)
		http.Error(w, "error, failed to log meal", http.StatusInternalServerError)
		return
	}

	log.Debugf("meal logged: [%s]: %s", result.Record.ItemName, result.Record.ID)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal log meal result: %s", err)
		http.Error(w, "error, failed to log meal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.tracker.DeleteRecord(ctx, id); err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete record %s: %s", id, err)
		http.Error(w, "error, failed to delete record", http.StatusInternalServerError)
		return
	}

	deletedJson, err := json.Marshal(DeleteRecordResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "error, failed to delete record", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deletedJson, http.StatusOK)
}
