package resilience

// RequestAttempt identifies one provider call within a search
type RequestAttempt struct {
	CredentialIndex int
	Credential      string
	Model           string
	Attempt         int
}

// search walks credentials × models × attempts as an explicit state machine.
// The caller reads current(), decides, then feeds the action back through next().
type search struct {
	credentials []string
	models      []string

	cred    int
	model   int
	attempt int
}

func newSearch(credentials, models []string) *search {
	return &search{
		credentials: credentials,
		models:      models,
	}
}

// done reports whether every credential and model has been tried
func (s *search) done() bool {
	return len(s.models) == 0 || s.cred >= len(s.credentials)
}

func (s *search) current() RequestAttempt {
	return RequestAttempt{
		CredentialIndex: s.cred,
		Credential:      s.credentials[s.cred],
		Model:           s.models[s.model],
		Attempt:         s.attempt,
	}
}

// next moves the cursor according to action. ActionResolve leaves it untouched.
func (s *search) next(action Action) {
	switch action {
	case ActionRetry:
		s.attempt++
	case ActionAdvance:
		s.attempt = 0
		s.model++
		if s.model >= len(s.models) {
			s.model = 0
			s.cred++
		}
	}
}
