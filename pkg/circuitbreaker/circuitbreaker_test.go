package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errSMTP = errors.New("smtp unavailable")

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var transitions []string
	cb := newCircuitBreaker(&Config{
		FailureThreshold: 2,
		RecoveryTimeout:  time.Minute,
		SuccessThreshold: 1,
		OnStateChange: func(from, to CircuitState) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	}, func() time.Time { return now })

	assert.ErrorIs(t, cb.Call(func() error { return errSMTP }), errSMTP)
	assert.Equal(t, Closed, cb.State())

	assert.ErrorIs(t, cb.Call(func() error { return errSMTP }), errSMTP)
	assert.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)

	now = now.Add(time.Minute + time.Second)
	assert.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, Closed, cb.State())

	assert.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newCircuitBreaker(&Config{FailureThreshold: 1, RecoveryTimeout: time.Second, SuccessThreshold: 1}, func() time.Time { return now })

	_ = cb.Call(func() error { return errSMTP })
	now = now.Add(2 * time.Second)
	_ = cb.Call(func() error { return errSMTP })

	m := cb.Metrics()
	assert.Equal(t, Open, m.State)
	assert.Equal(t, now.Add(time.Second), m.NextAttempt)
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(&Config{FailureThreshold: 1, RecoveryTimeout: time.Hour, SuccessThreshold: 1})
	_ = cb.Call(func() error { return errSMTP })
	assert.Equal(t, Open, cb.State())

	cb.Reset()
	assert.Equal(t, Closed, cb.State())
	assert.Equal(t, 0, cb.Metrics().FailureCount)
}
