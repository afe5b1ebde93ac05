package speech

// Outcome classifies a recognition attempt.
type Outcome int

const (
	OutcomeRecognized Outcome = iota
	OutcomeUnintelligible
	OutcomeBackendUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecognized:
		return "recognized"
	case OutcomeUnintelligible:
		return "unintelligible"
	case OutcomeBackendUnavailable:
		return "backend_unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of one recognition. Text is set only for
// OutcomeRecognized, Detail only for OutcomeBackendUnavailable.
type Result struct {
	Outcome Outcome
	Text    string
	Detail  string
}

func Recognized(text string) Result {
	return Result{Outcome: OutcomeRecognized, Text: text}
}

func Unintelligible() Result {
	return Result{Outcome: OutcomeUnintelligible}
}

func BackendUnavailable(detail string) Result {
	return Result{Outcome: OutcomeBackendUnavailable, Detail: detail}
}
