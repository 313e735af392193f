// Package sentiment scores financial statements as positive, neutral or
// negative.
//
// An Analyzer always has the local keyword heuristic available. It can also
// be given an external Scorer (a hosted classifier or an LLM); that path runs
// under a timeout, a rate limit and a circuit breaker, and any failure falls
// back to the heuristic without surfacing an error.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"finance-assistant/internal/domain"
)

const (
	defaultTimeout     = 5 * time.Second
	defaultMaxFailures = 3
	defaultOpenFor     = 30 * time.Second
)

var (
	// ErrNoScores is returned for a successful call with an empty result.
	ErrNoScores = errors.New("sentiment: scorer returned no scores")
	// ErrUnknownLabel is returned when the best label is not a known sentiment.
	ErrUnknownLabel = errors.New("sentiment: unknown label")
	// ErrRateLimited is returned when the scorer budget is exhausted.
	ErrRateLimited = errors.New("sentiment: scorer rate limited")
)

// LabelScore is one label of an external classification.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Scorer is an external sentiment classifier.
type Scorer interface {
	Score(ctx context.Context, text string) ([]LabelScore, error)
}

// Analyzer picks between an external scorer and the local heuristic.
type Analyzer struct {
	heuristic *Heuristic
	scorer    Scorer
	provider  string
	timeout   time.Duration
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker
	logger    *slog.Logger

	maxFailures uint32
	openFor     time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithScorer enables an external scorer under the given provider name.
func WithScorer(provider string, s Scorer) Option {
	return func(a *Analyzer) {
		a.provider = provider
		a.scorer = s
	}
}

// WithTimeout bounds each external call.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithRateLimit caps external calls per second; calls over budget use the
// heuristic.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(a *Analyzer) {
		if perSecond > 0 && burst > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithBreaker sets how many consecutive failures open the circuit and how
// long it stays open.
func WithBreaker(maxFailures uint32, openFor time.Duration) Option {
	return func(a *Analyzer) {
		if maxFailures > 0 {
			a.maxFailures = maxFailures
		}
		if openFor > 0 {
			a.openFor = openFor
		}
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithJitter replaces the source of tie-score jitter, which must return
// values in [0, 1).
func WithJitter(f func() float64) Option {
	return func(a *Analyzer) {
		if f != nil {
			a.heuristic = &Heuristic{jitter: f}
		}
	}
}

// NewAnalyzer returns an analyzer. Without WithScorer it only uses the local
// heuristic.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		heuristic:   NewHeuristic(),
		timeout:     defaultTimeout,
		logger:      slog.Default(),
		maxFailures: defaultMaxFailures,
		openFor:     defaultOpenFor,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.scorer != nil {
		maxFailures := a.maxFailures
		a.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "sentiment-" + a.provider,
			Timeout: a.openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				a.logger.Warn("sentiment scorer circuit changed state", "breaker", name, "from", from.String(), "to", to.String())
			},
		})
	}
	return a
}

// Provider returns the external provider name, or SourceLocal when none is
// configured.
func (a *Analyzer) Provider() string {
	if a.scorer == nil {
		return SourceLocal
	}
	return a.provider
}

// Analyze scores statement. It never fails.
func (a *Analyzer) Analyze(ctx context.Context, statement string) domain.SentimentResult {
	if a.scorer != nil {
		res, err := a.scoreExternal(ctx, statement)
		if err == nil {
			return res
		}
		a.logger.Warn("sentiment scorer unavailable, using local heuristic", "provider", a.provider, "err", err)
	}
	return a.heuristic.Score(statement)
}

func (a *Analyzer) scoreExternal(ctx context.Context, statement string) (domain.SentimentResult, error) {
	if a.limiter != nil && !a.limiter.Allow() {
		return domain.SentimentResult{}, ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.breaker.Execute(func() (interface{}, error) {
		scores, err := a.scorer.Score(ctx, statement)
		if err != nil {
			return nil, err
		}
		return best(scores)
	})
	if err != nil {
		return domain.SentimentResult{}, fmt.Errorf("sentiment: %s: %w", a.provider, err)
	}
	res := out.(domain.SentimentResult)
	res.Source = a.provider
	return res, nil
}

// best returns the highest-scoring label.
func best(scores []LabelScore) (domain.SentimentResult, error) {
	if len(scores) == 0 {
		return domain.SentimentResult{}, ErrNoScores
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score {
			top = s
		}
	}
	label, ok := domain.ParseSentiment(top.Label)
	if !ok {
		return domain.SentimentResult{}, fmt.Errorf("%w: %q", ErrUnknownLabel, top.Label)
	}
	if top.Score < 0 || top.Score > 1 {
		return domain.SentimentResult{}, fmt.Errorf("sentiment: score %v out of range", top.Score)
	}
	return domain.SentimentResult{Label: label, Score: top.Score}, nil
}
