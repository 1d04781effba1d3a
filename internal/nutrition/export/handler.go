package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/metrics"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type exportSource interface {
	Export(ctx context.Context, format Format, window progress.DateRange) ([]byte, error)
}

type Handler struct {
	exporter exportSource
	metrics  *metrics.Manager
}

func NewHandler(exporter exportSource, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		exporter: exporter,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.export")
	defer span.End()

	format := Format(mux.Vars(r)["format"])

	now := time.Now()
	window, err := progress.ResolvePreset(r.URL.Query().Get("range"), now)
	if err != nil {
		http.Error(w, "invalid range", http.StatusBadRequest)
		return
	}

	exported, err := handler.exporter.Export(ctx, format, window)
	if err != nil {
		if errors.Is(err, ErrUnknownFormat) {
			http.Error(w, "unknown format", http.StatusBadRequest)
			return
		}
		log.Errorf("export %s: %s", format, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterExports.With(prometheus.Labels{"format": string(format)}).Inc()

	filename := fmt.Sprintf("nutrition-export-%s.%s", now.Format("2006-01-02"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	contentType := pkg.ContentType.JSON
	if format == FormatCSV {
		contentType = pkg.ContentType.CSV
	}
	pkg.WriteResponseBytesOK(w, contentType, exported)
}
