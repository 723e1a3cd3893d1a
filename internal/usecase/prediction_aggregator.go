package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"lottopick/internal/domain/models"
	domrepo "lottopick/internal/domain/repository"
	icache "lottopick/internal/service/cache"
	"lottopick/internal/services/predict"
	"lottopick/internal/services/stats"
	xlogger "lottopick/pkg/logger"
)

// EngineConfig carries the tunable engine parameters.
type EngineConfig struct {
	Windows       []int
	DefaultWindow int
	HotCount      int
	ColdCount     int
	BatchSize     int
	MaxAttempts   int
	CacheTTL      time.Duration
}

// PredictionAggregator owns the per-request computation: it classifies the
// trailing window, runs the generator and assembles presentation-ready
// results. All state it touches is the immutable history snapshot; nothing
// persists across requests.
type PredictionAggregator struct {
	store     domrepo.DrawStore
	cache     icache.BytesCache
	metrics   domrepo.Metrics
	publisher domrepo.Publisher
	logger    *xlogger.Logger
	cfg       EngineConfig
}

func NewPredictionAggregator(
	store domrepo.DrawStore,
	cache icache.BytesCache,
	metrics domrepo.Metrics,
	publisher domrepo.Publisher,
	logger *xlogger.Logger,
	cfg EngineConfig,
) *PredictionAggregator {
	return &PredictionAggregator{
		store:     store,
		cache:     cache,
		metrics:   metrics,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// AnalyzeWindow classifies one trailing window and produces one prediction
// per policy, plus frequency chart data. Policies whose pools cannot satisfy
// them are skipped with a warning; InsufficientHistory fails the call.
func (a *PredictionAggregator) AnalyzeWindow(ctx context.Context, window int, seed int64) (*models.WindowReport, error) {
	start := time.Now()
	defer a.recordLatency("analyze_window", start)

	pools, err := a.poolsFor(ctx, window)
	if err != nil {
		a.recordError("classify")
		return nil, err
	}

	g := a.newGenerator(seed)
	preds := make([]models.Prediction, 0, len(models.AllPolicies()))
	for _, policy := range models.AllPolicies() {
		combo, err := g.Generate(pools, policy, predict.Constraints{})
		if err != nil {
			a.recordError("generate")
			a.warn("policy skipped", xlogger.String("policy", policy.Code()), xlogger.Int("window", window), xlogger.Error(err))
			continue
		}
		p, err := a.buildPrediction(policy, combo, pools)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
		a.recordPrediction(policy, window)
		a.publish(ctx, policy, window, combo, seed)
	}

	return &models.WindowReport{
		LatestRound:  a.store.LatestRound(),
		Window:       window,
		HotPoolSize:  len(pools.Hot),
		ColdPoolSize: len(pools.Cold),
		HotPool:      pools.Hot,
		ColdPool:     pools.Cold,
		Predictions:  preds,
		Frequency:    frequencyData(pools),
	}, nil
}

// Aggregate runs classification and batch generation for several windows
// under one policy. Windows are computed independently; the call fails as a
// whole on the first error, so partial multi-window results are never
// returned.
func (a *PredictionAggregator) Aggregate(ctx context.Context, windows []int, policy models.Policy, batchSize int, seed int64, cons predict.Constraints) (*models.MultiWindowReport, error) {
	start := time.Now()
	defer a.recordLatency("aggregate", start)

	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: no windows requested", models.ErrInvalidParameters)
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: batch size must be >= 1, got %d", models.ErrInvalidParameters, batchSize)
	}

	report := &models.MultiWindowReport{
		LatestRound: a.store.LatestRound(),
		Policy:      policy.Code(),
		BatchSize:   batchSize,
		Windows:     make([]models.WindowBatch, 0, len(windows)),
	}
	g := a.newGenerator(seed)
	for _, window := range windows {
		pools, err := a.poolsFor(ctx, window)
		if err != nil {
			a.recordError("classify")
			return nil, err
		}
		batch, err := g.GenerateBatch(pools, policy, cons, batchSize)
		if err != nil {
			a.recordError("generate")
			return nil, err
		}
		combos := make([]models.Prediction, 0, len(batch))
		for _, c := range batch {
			p, err := a.buildPrediction(policy, c, pools)
			if err != nil {
				return nil, err
			}
			combos = append(combos, p)
			a.recordPrediction(policy, window)
			a.publish(ctx, policy, window, c, seed)
		}
		report.Windows = append(report.Windows, models.WindowBatch{
			Window:       window,
			HotPool:      pools.Hot,
			ColdPool:     pools.Cold,
			Combinations: combos,
		})
	}
	return report, nil
}

// Stream generates count distinct combinations for one window/policy and
// hands each to fn as it is produced. Used by the live websocket endpoint.
func (a *PredictionAggregator) Stream(ctx context.Context, window int, policy models.Policy, count int, seed int64, cons predict.Constraints, fn func(models.Prediction) error) error {
	if count < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", models.ErrInvalidParameters, count)
	}
	pools, err := a.poolsFor(ctx, window)
	if err != nil {
		return err
	}
	g := a.newGenerator(seed)
	budget := a.cfg.MaxAttempts
	if budget < 1 {
		budget = predict.DefaultMaxAttempts
	}
	seen := make(map[models.Combination]struct{}, count)
	for len(seen) < count {
		if err := ctx.Err(); err != nil {
			return err
		}
		var c models.Combination
		found := false
		for attempt := 0; attempt < budget; attempt++ {
			cand, err := g.Generate(pools, policy, cons)
			if err != nil {
				return err
			}
			if _, dup := seen[cand]; dup {
				continue
			}
			c, found = cand, true
			break
		}
		if !found {
			return fmt.Errorf("%w: no more distinct combinations for policy %s after %d attempts",
				models.ErrPolicyUnsatisfiable, policy.Code(), budget)
		}
		seen[c] = struct{}{}
		p, err := a.buildPrediction(policy, c, pools)
		if err != nil {
			return err
		}
		a.recordPrediction(policy, window)
		a.publish(ctx, policy, window, c, seed)
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// DescribePolicy returns static policy metadata for an external code.
func (a *PredictionAggregator) DescribePolicy(code string) (models.PolicyInfo, error) {
	p, err := models.ParsePolicy(code)
	if err != nil {
		return models.PolicyInfo{}, err
	}
	return p.Info(), nil
}

// Info summarizes the loaded dataset: latest round, total records and the
// five most recent draws.
func (a *PredictionAggregator) Info(ctx context.Context) (*models.DatasetInfo, error) {
	history := a.store.History()
	n := 5
	if len(history) < n {
		n = len(history)
	}
	recent := make([]models.RecentDraw, 0, n)
	for _, d := range history[:n] {
		recent = append(recent, models.RecentDraw{
			Round:   d.Round,
			Date:    d.Date,
			Numbers: d.Numbers[:],
			Colors:  models.BallColors(d.Numbers[:]),
		})
	}
	return &models.DatasetInfo{
		LatestRound:  a.store.LatestRound(),
		TotalRecords: len(history),
		Recent:       recent,
	}, nil
}

// DefaultWindows returns the configured multi-window sizes.
func (a *PredictionAggregator) DefaultWindows() []int {
	return append([]int(nil), a.cfg.Windows...)
}

// DefaultBatchSize returns the configured batch size.
func (a *PredictionAggregator) DefaultBatchSize() int { return a.cfg.BatchSize }

// poolsFor classifies one window, with an optional cache in front. The cache
// key includes the history length so appended draws invalidate naturally.
func (a *PredictionAggregator) poolsFor(ctx context.Context, window int) (models.Pools, error) {
	history := a.store.History()
	key := fmt.Sprintf("pools:%d:%d:%d:%d", window, a.cfg.HotCount, a.cfg.ColdCount, len(history))

	if a.cache != nil {
		if b, ok, err := a.cache.GetBytes(key); err == nil && ok {
			var pools models.Pools
			if err := json.Unmarshal(b, &pools); err == nil {
				a.recordCache(true)
				return pools, nil
			}
		}
		a.recordCache(false)
	}

	pools, err := stats.Classify(history, window, a.cfg.HotCount, a.cfg.ColdCount)
	if err != nil {
		return models.Pools{}, err
	}

	if a.cache != nil {
		if b, err := json.Marshal(pools); err == nil {
			if err := a.cache.SetBytes(key, b, a.cfg.CacheTTL); err != nil {
				a.warn("pool cache write failed", xlogger.Error(err))
			}
		}
	}
	return pools, nil
}

func (a *PredictionAggregator) newGenerator(seed int64) *predict.Generator {
	opts := []predict.Option{predict.WithMaxAttempts(a.cfg.MaxAttempts)}
	if a.metrics != nil {
		opts = append(opts, predict.WithObserver(func(p models.Policy, attempts int) {
			a.metrics.RecordAttempts(p.Code(), attempts)
		}))
	}
	return predict.New(seed, opts...)
}

func (a *PredictionAggregator) buildPrediction(policy models.Policy, c models.Combination, pools models.Pools) (models.Prediction, error) {
	ind, err := stats.ComputeIndicators(c)
	if err != nil {
		return models.Prediction{}, err
	}
	hot, cold := 0, 0
	for _, n := range c {
		if pools.IsHot(n) {
			hot++
		}
		if pools.IsCold(n) {
			cold++
		}
	}
	info := policy.Info()
	return models.Prediction{
		Policy:     info.Code,
		Name:       info.Name,
		Numbers:    c[:],
		Colors:     models.BallColors(c[:]),
		Sum:        ind.Sum,
		OddEven:    ind.OddEven(),
		LowHigh:    ind.LowHigh(),
		ACValue:    ind.ACValue,
		LastDigits: ind.LastDigitSum,
		Sections:   ind.Sections,
		HotCount:   hot,
		ColdCount:  cold,
		Indicators: ind,
	}, nil
}

// frequencyData assembles chart-ready hot pool counts, ascending by number.
func frequencyData(pools models.Pools) models.FrequencyData {
	nums := append([]int(nil), pools.Hot...)
	sort.Ints(nums)
	counts := make([]int, len(nums))
	for i, n := range nums {
		counts[i] = pools.Freq.Count(n)
	}
	return models.FrequencyData{
		Numbers: nums,
		Counts:  counts,
		Colors:  models.BallColors(nums),
	}
}

func (a *PredictionAggregator) publish(ctx context.Context, policy models.Policy, window int, c models.Combination, seed int64) {
	if a.publisher == nil {
		return
	}
	e := &models.PredictionEvent{
		Policy:      policy.Code(),
		Window:      window,
		Numbers:     c[:],
		Seed:        seed,
		LatestRound: a.store.LatestRound(),
		GeneratedAt: time.Now().UTC(),
	}
	if err := a.publisher.PublishPrediction(ctx, e); err != nil {
		a.recordError("publish")
		a.warn("prediction publish failed", xlogger.Error(err))
	}
}

func (a *PredictionAggregator) warn(msg string, fields ...xlogger.Field) {
	if a.logger != nil {
		a.logger.Warn(msg, fields...)
	}
}

func (a *PredictionAggregator) recordPrediction(policy models.Policy, window int) {
	if a.metrics != nil {
		a.metrics.RecordPrediction(policy.Code(), window)
	}
}

func (a *PredictionAggregator) recordLatency(op string, start time.Time) {
	if a.metrics != nil {
		a.metrics.RecordLatency(op, time.Since(start).Seconds())
	}
}

func (a *PredictionAggregator) recordError(kind string) {
	if a.metrics != nil {
		a.metrics.RecordError(kind)
	}
}

func (a *PredictionAggregator) recordCache(hit bool) {
	if a.metrics != nil {
		a.metrics.RecordCache(hit)
	}
}
