package resilience

import "github.com/upb/career-advisor/services/providers"

// Action is what the orchestrator does after classifying one attempt
type Action int

const (
	// ActionResolve stops the search with the decoded value
	ActionResolve Action = iota + 1

	// ActionRetry repeats the same credential and model after the backoff
	ActionRetry

	// ActionAdvance moves on to the next model, or the next credential after the last model
	ActionAdvance
)

func (a Action) String() string {
	switch a {
	case ActionResolve:
		return "resolve"
	case ActionRetry:
		return "retry"
	case ActionAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// decide maps a classified outcome and the remaining retry budget to an action.
// Decode failures reach here as OutcomeOtherFailure.
func decide(kind providers.OutcomeKind, attempt, maxRetries int) Action {
	switch kind {
	case providers.OutcomeSuccess:
		return ActionResolve
	case providers.OutcomeRateLimited:
		if attempt < maxRetries {
			return ActionRetry
		}
		return ActionAdvance
	default:
		return ActionAdvance
	}
}
