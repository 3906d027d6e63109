// Package classify decides, per failed attempt, whether another attempt is
// permitted.
package classify

import "errors"

// OutcomeKind describes the executor's decision about an attempt result.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeSuccess
	OutcomeRetryable
	OutcomeTerminal
)

// Outcome is the classification of a single attempt result.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Classifier maps an attempt error to an Outcome. A nil error always
// classifies as success.
type Classifier interface {
	Classify(err error) Outcome
}

// RetryAny treats every failure as retryable.
type RetryAny struct{}

func (RetryAny) Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Reason: "success"}
	}
	return Outcome{Kind: OutcomeRetryable, Reason: "retryable_error"}
}

// FailAny treats the first failure as terminal, regardless of its kind.
type FailAny struct{}

func (FailAny) Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Reason: "success"}
	}
	return Outcome{Kind: OutcomeTerminal, Reason: "fail_on_any"}
}

// On returns a Classifier that retries only failures matching one of kinds.
//
// An occurred error matches a configured kind when errors.Is(err, kind)
// holds, i.e. when the error is, or wraps, the kind. This is the
// conventional matching direction: a configured kind also covers everything
// derived from it by wrapping, never the other way around.
func On(kinds ...error) Classifier {
	targets := make([]error, 0, len(kinds))
	for _, k := range kinds {
		if k != nil {
			targets = append(targets, k)
		}
	}
	return onKinds{targets: targets}
}

type onKinds struct {
	targets []error
}

func (c onKinds) Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Reason: "success"}
	}
	for _, target := range c.targets {
		if errors.Is(err, target) {
			return Outcome{Kind: OutcomeRetryable, Reason: "matched_retryable_kind"}
		}
	}
	return Outcome{Kind: OutcomeTerminal, Reason: "unmatched_kind"}
}
