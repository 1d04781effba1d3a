package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

type recordsRepo interface {
	Get(ctx context.Context, id string) (*AnalysisRecord, error)
	List(ctx context.Context, params ListParams) (_ []AnalysisRecord, total int, err error)
	ListAll(ctx context.Context, params RecordParams) ([]AnalysisRecord, error)
	ListForDay(ctx context.Context, day time.Time) ([]AnalysisRecord, error)
}

type ListResponse struct {
	Records []AnalysisRecord `json:"records"`
	Total   int              `json:"total"`
}

type Handler struct {
	repo recordsRepo
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, record id empty", http.StatusBadRequest)
		return
	}

	record, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get record [%s]: %s", id, err)
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal record [%s]: %s", id, err)
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page size (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	recs, total, err := handler.repo.List(ctx, ListParams{
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list records error: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Records: recs,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal records list error: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listResponseJson)
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.listforday")
	defer span.End()

	day := time.Now()
	if dayParam := r.URL.Query().Get("date"); dayParam != "" {
		parsed, err := time.Parse("2006-01-02", dayParam)
		if err != nil {
			http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	recs, err := handler.repo.ListForDay(ctx, day)
	if err != nil {
		log.Errorf("list records for day error: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	recsJson, err := json.Marshal(recs)
	if err != nil {
		log.Errorf("marshal records error: %s", err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recsJson)
}
