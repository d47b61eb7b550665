package mailer

import (
	"context"

	"github.com/fahicart/fahicart-web/pkg/circuitbreaker"
)

// BreakerSender stops calling the wrapped Sender while the breaker is open.
// Calls rejected by an open breaker return circuitbreaker.ErrCircuitOpen.
type BreakerSender struct {
	next    Sender
	breaker circuitbreaker.CircuitBreaker
}

func NewBreakerSender(next Sender, breaker circuitbreaker.CircuitBreaker) *BreakerSender {
	return &BreakerSender{next: next, breaker: breaker}
}

func (s *BreakerSender) Send(ctx context.Context, message *Message) error {
	return s.breaker.Call(func() error {
		return s.next.Send(ctx, message)
	})
}

func (s *BreakerSender) State() circuitbreaker.CircuitState {
	return s.breaker.State()
}
