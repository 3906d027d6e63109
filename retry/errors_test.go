package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reprise-io/reprise/call"
)

func TestExhaustedError(t *testing.T) {
	cause := errors.New("boom")
	err := &ExhaustedError{
		Results: &call.Results{CallName: "svc.fetch", TotalTries: 5},
		Err:     cause,
	}

	assert.Equal(t, `reprise: call "svc.fetch" failed after 5 tries`, err.Error())
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnexpected)
}

func TestExhaustedError_NilResults(t *testing.T) {
	err := &ExhaustedError{}
	assert.Equal(t, `reprise: call "" failed after 0 tries`, err.Error())
}

func TestUnexpectedError(t *testing.T) {
	cause := errors.New("bad input")
	err := &UnexpectedError{
		Results: &call.Results{CallName: "svc.save"},
		Reason:  "unmatched_kind",
		Err:     cause,
	}

	assert.Contains(t, err.Error(), `"svc.save"`)
	assert.Contains(t, err.Error(), "bad input")
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
}
