package nutrition

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/achievements"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/goals"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/metrics"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"
	"github.com/vladamisici/food-analyzer-sub000/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=nutrition_test

type recordsStore interface {
	Add(ctx context.Context, record records.AnalysisRecord) (*records.AnalysisRecord, error)
	Get(ctx context.Context, id string) (*records.AnalysisRecord, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, params records.RecordParams) (int, error)
}

type goalsStore interface {
	GetActive(ctx context.Context) (*goals.NutritionGoals, error)
	SetActive(ctx context.Context, g goals.NutritionGoals) error
}

type achievementsStore interface {
	GetUnlocked(ctx context.Context) ([]achievements.Achievement, error)
	PersistNewlyUnlocked(ctx context.Context, newlyUnlocked []achievements.Achievement) error
}

type progressSource interface {
	DailyProgress(ctx context.Context, day time.Time) (*progress.DailyProgress, error)
	CurrentStreak(ctx context.Context, from time.Time) (int, error)
	Invalidate(day time.Time)
	ClearCache()
}

type EventType string

const (
	EventMealLogged          EventType = "meal_logged"
	EventMealDeleted         EventType = "meal_deleted"
	EventGoalsUpdated        EventType = "goals_updated"
	EventAchievementUnlocked EventType = "achievement_unlocked"
)

// ProgressEvent is pushed to subscribers after a successful write. Only
// the fields relevant to the event type are set.
type ProgressEvent struct {
	Type          EventType                 `json:"type"`
	Record        *records.AnalysisRecord   `json:"record,omitempty"`
	DailyProgress *progress.DailyProgress   `json:"dailyProgress,omitempty"`
	Achievement   *achievements.Achievement `json:"achievement,omitempty"`
	Timestamp     time.Time                 `json:"timestamp"`
}

const recordIDLength = 20

// subscriber channels are buffered; a slow consumer loses events
// instead of blocking the write path
const subscriberChanBuffer = 32

// Tracker runs the write path: every meal log, record deletion and goals
// update goes through it, so derived state (cached progress, unlocked
// achievements) never drifts from the records. A single mutex serializes
// writers; reads go straight to the repos and aggregator.
type Tracker struct {
	records      recordsStore
	goals        goalsStore
	achievements achievementsStore
	progress     progressSource
	engine       *achievements.Engine
	metrics      *metrics.Manager

	mutex sync.Mutex

	subscribersMutex sync.Mutex
	subscribers      []chan ProgressEvent

	RandStringFunc func(length int) (string, error)
	NowFunc        func() time.Time
}

func NewTracker(
	recordsRepo recordsStore,
	goalsRepo goalsStore,
	achievementsRepo achievementsStore,
	progressAggregator progressSource,
	engine *achievements.Engine,
	metricsManager *metrics.Manager,
) *Tracker {
	return &Tracker{
		records:        recordsRepo,
		goals:          goalsRepo,
		achievements:   achievementsRepo,
		progress:       progressAggregator,
		engine:         engine,
		metrics:        metricsManager,
		RandStringFunc: pkg.GenerateRandomString,
		NowFunc:        time.Now,
	}
}

type LogMealResult struct {
	Record          records.AnalysisRecord     `json:"record"`
	DailyProgress   *progress.DailyProgress    `json:"dailyProgress"`
	Streak          int                        `json:"streak"`
	NewAchievements []achievements.Achievement `json:"newAchievements"`
}

// LogMeal appends an analysis record and rolls the derived state forward:
// invalidates the day's cached progress, reaggregates it, recomputes the
// streak and evaluates achievements. Logging the same record twice is an
// upsert, not a duplicate.
func (t *Tracker) LogMeal(ctx context.Context, record records.AnalysisRecord) (_ *LogMealResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutrition.logMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if record.ID == "" {
		id, err := t.RandStringFunc(recordIDLength)
		if err != nil {
			return nil, fmt.Errorf("generate record id: %w", err)
		}
		record.ID = id
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = t.NowFunc()
	}
	span.SetAttributes(attribute.String("record.id", record.ID))

	added, err := t.records.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("add record: %w", err)
	}

	t.progress.Invalidate(added.Day())

	dailyProgress, err := t.progress.DailyProgress(ctx, added.Day())
	if err != nil {
		return nil, fmt.Errorf("aggregate day: %w", err)
	}

	streak, err := t.progress.CurrentStreak(ctx, t.NowFunc())
	if err != nil {
		return nil, fmt.Errorf("current streak: %w", err)
	}

	state, err := t.snapshotState(ctx, dailyProgress, streak)
	if err != nil {
		return nil, err
	}
	state.LastRecord = added

	newlyUnlocked, err := t.evaluateAchievements(ctx, state)
	if err != nil {
		return nil, err
	}

	t.metrics.CounterMealsLogged.Inc()

	t.publish(ProgressEvent{
		Type:          EventMealLogged,
		Record:        added,
		DailyProgress: dailyProgress,
		Timestamp:     t.NowFunc(),
	})
	for i := range newlyUnlocked {
		t.publish(ProgressEvent{
			Type:        EventAchievementUnlocked,
			Achievement: &newlyUnlocked[i],
			Timestamp:   t.NowFunc(),
		})
	}

	return &LogMealResult{
		Record:          *added,
		DailyProgress:   dailyProgress,
		Streak:          streak,
		NewAchievements: newlyUnlocked,
	}, nil
}

// DeleteRecord removes a record and invalidates the cached progress of
// its day. Unlocked achievements stay unlocked.
func (t *Tracker) DeleteRecord(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutrition.deleteRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record.id", id))

	t.mutex.Lock()
	defer t.mutex.Unlock()

	record, err := t.records.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := t.records.Delete(ctx, id); err != nil {
		return err
	}

	t.progress.Invalidate(record.Day())
	t.metrics.CounterMealsDeleted.Inc()

	t.publish(ProgressEvent{
		Type:      EventMealDeleted,
		Record:    record,
		Timestamp: t.NowFunc(),
	})

	return nil
}

// GetActive returns the active goals, unchanged from the repo.
func (t *Tracker) GetActive(ctx context.Context) (*goals.NutritionGoals, error) {
	return t.goals.GetActive(ctx)
}

// SetActive persists new goals, drops all cached progress (every day's
// ratios just changed) and reevaluates achievements.
func (t *Tracker) SetActive(ctx context.Context, g goals.NutritionGoals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutrition.setGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if err := t.goals.SetActive(ctx, g); err != nil {
		return err
	}

	t.progress.ClearCache()

	dailyProgress, err := t.progress.DailyProgress(ctx, t.NowFunc())
	if err != nil {
		return fmt.Errorf("aggregate day: %w", err)
	}
	streak, err := t.progress.CurrentStreak(ctx, t.NowFunc())
	if err != nil {
		return fmt.Errorf("current streak: %w", err)
	}

	state, err := t.snapshotState(ctx, dailyProgress, streak)
	if err != nil {
		return err
	}

	if _, err := t.evaluateAchievements(ctx, state); err != nil {
		return err
	}

	t.publish(ProgressEvent{
		Type:          EventGoalsUpdated,
		DailyProgress: dailyProgress,
		Timestamp:     t.NowFunc(),
	})

	return nil
}

// Subscribe returns a channel of write events. There is no unsubscribe;
// subscribers live as long as the tracker.
func (t *Tracker) Subscribe() <-chan ProgressEvent {
	t.subscribersMutex.Lock()
	defer t.subscribersMutex.Unlock()

	events := make(chan ProgressEvent, subscriberChanBuffer)
	t.subscribers = append(t.subscribers, events)
	return events
}

func (t *Tracker) publish(event ProgressEvent) {
	t.subscribersMutex.Lock()
	defer t.subscribersMutex.Unlock()

	for _, events := range t.subscribers {
		select {
		case events <- event:
		default:
			log.Warnf("progress event subscriber full, dropping %s event", event.Type)
		}
	}
}

func (t *Tracker) snapshotState(
	ctx context.Context,
	dailyProgress *progress.DailyProgress,
	streak int,
) (achievements.State, error) {
	total, err := t.records.Count(ctx, records.RecordParams{})
	if err != nil {
		return achievements.State{}, fmt.Errorf("count records: %w", err)
	}

	goalsSet := true
	if _, err := t.goals.GetActive(ctx); err != nil {
		if !errors.Is(err, goals.ErrGoalsNotSet) {
			return achievements.State{}, fmt.Errorf("get active goals: %w", err)
		}
		goalsSet = false
	}

	analysesToday := 0
	if dailyProgress != nil {
		analysesToday = len(dailyProgress.RecordIDs)
	}

	return achievements.State{
		GoalsSet:      goalsSet,
		TotalAnalyses: total,
		AnalysesToday: analysesToday,
		DailyProgress: dailyProgress,
		Streak:        streak,
	}, nil
}

// evaluateAchievements persists and returns the achievements newly
// unlocked by the given state. Safe to call repeatedly with the same
// state: already unlocked achievements are never emitted again.
func (t *Tracker) evaluateAchievements(ctx context.Context, state achievements.State) ([]achievements.Achievement, error) {
	unlocked, err := t.achievements.GetUnlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("get unlocked achievements: %w", err)
	}

	alreadyUnlocked := make(map[string]bool, len(unlocked))
	for _, a := range unlocked {
		alreadyUnlocked[a.ID] = true
	}

	newlyUnlocked := t.engine.Evaluate(state, alreadyUnlocked, t.NowFunc())
	if len(newlyUnlocked) == 0 {
		return nil, nil
	}

	if err := t.achievements.PersistNewlyUnlocked(ctx, newlyUnlocked); err != nil {
		return nil, fmt.Errorf("persist unlocked achievements: %w", err)
	}

	for _, a := range newlyUnlocked {
		log.Printf("achievement unlocked: %s", a.ID)
	}
	t.metrics.CounterAchievementsUnlocked.Add(float64(len(newlyUnlocked)))

	return newlyUnlocked, nil
}
