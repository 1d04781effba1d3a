package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=export_mocks_test.go -package=export_test

type exportRepo interface {
	ListAll(ctx context.Context, params records.RecordParams) ([]records.AnalysisRecord, error)
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = fmt.Errorf("unknown export format")

type Exporter struct {
	repo exportRepo
}

func NewExporter(repo exportRepo) *Exporter {
	return &Exporter{
		repo: repo,
	}
}

// Export renders all records in the window in the requested format.
func (e *Exporter) Export(ctx context.Context, format Format, window progress.DateRange) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exporter.export.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recs, err := e.repo.ListAll(ctx, records.RecordParams{
		From: &window.Start,
		To:   &window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	inWindow := make([]records.AnalysisRecord, 0, len(recs))
	for _, rec := range recs {
		if window.Contains(rec.Timestamp) {
			inWindow = append(inWindow, rec)
		}
	}

	switch format {
	case FormatCSV:
		return ToCSV(inWindow), nil
	case FormatJSON:
		return ToJSON(inWindow)
	default:
		return nil, ErrUnknownFormat
	}
}

const csvHeader = "Date,Food Name,Calories,Protein,Fat,Carbs,Health Score,Coach Comment"

const csvDateLayout = time.RFC3339

// ToCSV renders one line per record under a fixed header. Free-text fields
// have commas replaced with semicolons instead of RFC 4180 quoting, so the
// output stays splittable on plain commas.
func ToCSV(recs []records.AnalysisRecord) []byte {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')
	for _, rec := range recs {
		sb.WriteString(rec.Timestamp.Format(csvDateLayout))
		sb.WriteByte(',')
		sb.WriteString(csvField(rec.ItemName))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(rec.Calories))
		sb.WriteByte(',')
		sb.WriteString(formatGrams(rec.Protein))
		sb.WriteByte(',')
		sb.WriteString(formatGrams(rec.Fat))
		sb.WriteByte(',')
		sb.WriteString(formatGrams(rec.Carbs))
		sb.WriteByte(',')
		sb.WriteString(csvField(rec.HealthScore))
		sb.WriteByte(',')
		sb.WriteString(csvField(rec.CoachComment))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func csvField(value string) string {
	value = strings.ReplaceAll(value, ",", ";")
	value = strings.ReplaceAll(value, "\n", " ")
	return value
}

func formatGrams(grams float64) string {
	return strconv.FormatFloat(grams, 'f', -1, 64)
}

// ToJSON keeps full fidelity, commas and newlines included.
func ToJSON(recs []records.AnalysisRecord) ([]byte, error) {
	if recs == nil {
		recs = []records.AnalysisRecord{}
	}
	exported, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return exported, nil
}
