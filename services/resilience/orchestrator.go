// Package resilience resolves AI generation requests across rotating credentials and
// prioritized models, falling back to caller data when the provider stays unavailable.
package resilience

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/upb/career-advisor/services/decoder"
	"github.com/upb/career-advisor/services/providers"
)

const (
	// BusyMessage is returned by Generate when every attempt failed and no fallback was given
	BusyMessage = "I'm currently receiving too many requests. Please try again later! ⏳"

	// jsonInstruction is appended to structured prompts
	jsonInstruction = "\n\nIMPORTANT: Output ONLY valid JSON code. No markdown formatting."

	quotaExceededKey   = "error"
	quotaExceededValue = "quota_exceeded"
)

// QuotaExceeded returns the sentinel value GenerateStructured resolves to when every
// attempt failed and no fallback was given
func QuotaExceeded() map[string]any {
	return map[string]any{quotaExceededKey: quotaExceededValue}
}

// IsQuotaExceeded reports whether v is the QuotaExceeded sentinel
func IsQuotaExceeded(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return false
	}
	s, ok := m[quotaExceededKey].(string)
	return ok && s == quotaExceededValue
}

// Policy bounds the retries spent on a single credential and model pair
type Policy struct {
	// MaxRetries is the number of extra attempts after a rate-limited reply
	MaxRetries int

	// Backoff is the fixed pause before each retry
	Backoff time.Duration
}

// DefaultPolicy favors latency: one retry after one second
func DefaultPolicy() Policy {
	return Policy{MaxRetries: 1, Backoff: time.Second}
}

// SleepFunc pauses for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Orchestrator drives the credential × model × attempt search for one logical request.
// It holds only read-only configuration, so one instance serves concurrent callers.
type Orchestrator struct {
	client      providers.Client
	credentials *CredentialPool
	models      *ModelPriorityList
	policy      Policy
	sleep       SleepFunc
	logger      *zap.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithSleep replaces the backoff sleep
func WithSleep(sleep SleepFunc) Option {
	return func(o *Orchestrator) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(client providers.Client, credentials *CredentialPool, models *ModelPriorityList, policy Policy, opts ...Option) *Orchestrator {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.Backoff < 0 {
		policy.Backoff = 0
	}

	o := &Orchestrator{
		client:      client,
		credentials: credentials,
		models:      models,
		policy:      policy,
		sleep:       sleepContext,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CredentialCount returns the number of configured credentials
func (o *Orchestrator) CredentialCount() int {
	return o.credentials.Len()
}

// Models returns the model priority order
func (o *Orchestrator) Models() []string {
	return o.models.Models()
}

// Policy returns the retry policy
func (o *Orchestrator) Policy() Policy {
	return o.policy
}

// Generate resolves a free-text request. When every attempt fails it returns fallback,
// or BusyMessage when fallback is empty.
func (o *Orchestrator) Generate(ctx context.Context, prompt string, temperature float64, fallback string) string {
	value, ok := o.resolve(ctx, prompt, temperature, false, func(raw string) (any, error) {
		return decoder.DecodeText(raw), nil
	})
	if ok {
		return value.(string)
	}
	if fallback != "" {
		return fallback
	}
	return BusyMessage
}

// GenerateStructured resolves a request whose reply must be JSON. When every attempt
// fails it returns fallback unchanged, or the QuotaExceeded sentinel when fallback is nil.
func (o *Orchestrator) GenerateStructured(ctx context.Context, prompt string, temperature float64, fallback any) any {
	return o.GenerateValidated(ctx, prompt, temperature, nil, fallback)
}

// GenerateValidated is GenerateStructured with a schema the decoded reply must satisfy.
// A reply that violates the schema counts as a decode failure for that model.
func (o *Orchestrator) GenerateValidated(ctx context.Context, prompt string, temperature float64, schema *decoder.Schema, fallback any) any {
	value, ok := o.resolve(ctx, prompt+jsonInstruction, temperature, true, func(raw string) (any, error) {
		return decoder.DecodeStructured(raw, schema)
	})
	if ok {
		return value
	}
	if !isAbsent(fallback) {
		return fallback
	}
	return QuotaExceeded()
}

// isAbsent treats nil and typed nil maps, slices and pointers as no fallback
func isAbsent(fallback any) bool {
	if fallback == nil {
		return true
	}
	switch v := reflect.ValueOf(fallback); v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// resolve runs the search. The boolean is false when the search ended without a value.
func (o *Orchestrator) resolve(ctx context.Context, prompt string, temperature float64, structured bool, decode func(string) (any, error)) (any, bool) {
	searchID := uuid.New().String()
	logger := o.logger.With(
		zap.String("search_id", searchID),
		zap.Bool("structured", structured))

	if o.credentials.IsEmpty() {
		logger.Warn("no credentials configured, skipping provider")
		return nil, false
	}

	s := newSearch(o.credentials.Credentials(), o.models.Models())
	calls := 0

	for !s.done() {
		if err := ctx.Err(); err != nil {
			logger.Warn("search cancelled", zap.Int("calls", calls), zap.Error(err))
			return nil, false
		}

		at := s.current()
		outcome := o.client.Call(ctx, providers.Call{
			Credential:  at.Credential,
			Model:       at.Model,
			Prompt:      prompt,
			Temperature: temperature,
			JSON:        structured,
		})
		calls++

		var value any
		if outcome.Kind == providers.OutcomeSuccess {
			decoded, err := decode(outcome.Text)
			if err != nil {
				logger.Warn("decode failed",
					zap.String("model", at.Model),
					zap.Error(err))
				outcome = providers.OtherFailure(err)
			} else {
				value = decoded
			}
		}

		action := decide(outcome.Kind, at.Attempt, o.policy.MaxRetries)

		fields := []zap.Field{
			zap.String("credential", MaskCredential(at.Credential)),
			zap.Int("credential_index", at.CredentialIndex),
			zap.String("model", at.Model),
			zap.Int("attempt", at.Attempt),
			zap.String("outcome", outcome.Kind.String()),
			zap.String("action", action.String()),
		}

		switch action {
		case ActionResolve:
			logger.Debug("attempt resolved", append(fields, zap.Int("calls", calls))...)
			return value, true
		case ActionRetry:
			logger.Warn("rate limited, retrying", append(fields, zap.Duration("backoff", o.policy.Backoff))...)
			if err := o.sleep(ctx, o.policy.Backoff); err != nil {
				logger.Warn("backoff interrupted", zap.Error(err))
				return nil, false
			}
		default:
			logger.Warn("attempt failed, advancing", append(fields, zap.String("detail", outcome.Detail()))...)
		}

		s.next(action)
	}

	logger.Warn("all credentials and models exhausted", zap.Int("calls", calls))
	return nil, false
}
