package contact

import (
	apperrors "github.com/fahicart/fahicart-web/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSent           = "sent"
	outcomeRateLimited    = "rate_limited"
	outcomeInvalid        = "invalid"
	outcomeMalformed      = "malformed"
	outcomeMisconfigured  = "misconfigured"
	outcomeDispatchFailed = "dispatch_failed"
	outcomeError          = "error"
)

type inquiryMetrics struct {
	outcomes *prometheus.CounterVec
}

// newInquiryMetrics registers contact_inquiries_total on reg. A nil reg
// yields a no-op recorder.
func newInquiryMetrics(reg prometheus.Registerer) *inquiryMetrics {
	if reg == nil {
		return &inquiryMetrics{}
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_inquiries_total",
		Help: "Contact form submissions by outcome.",
	}, []string{"outcome"})

	if err := reg.Register(outcomes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			outcomes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return &inquiryMetrics{}
		}
	}

	return &inquiryMetrics{outcomes: outcomes}
}

func (m *inquiryMetrics) record(err error) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(outcomeFor(err)).Inc()
}

func outcomeFor(err error) string {
	if err == nil {
		return outcomeSent
	}

	switch apperrors.GetErrorType(err) {
	case apperrors.ErrorTypeRateLimitExceeded:
		return outcomeRateLimited
	case apperrors.ErrorTypeInvalidRequest:
		return outcomeInvalid
	case apperrors.ErrorTypeMalformedRequestBody:
		return outcomeMalformed
	case apperrors.ErrorTypeServiceMisconfigured:
		return outcomeMisconfigured
	case apperrors.ErrorTypeDispatchFailed:
		return outcomeDispatchFailed
	default:
		return outcomeError
	}
}
