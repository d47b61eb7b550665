package contact

import "github.com/fahicart/fahicart-web/pkg/constants"

// SubmitInquiryRequest is the contact form payload. Values are validated
// exactly as received: no trimming, no case-folding.
type SubmitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

const (
	SuccessMessage       = "Inquiry sent successfully! We'll get back to you soon. In Sha Allah."
	NotConfiguredMessage = "Email service not configured. Please contact support."
	FailureMessage       = "Failed to send message. Please try again or contact us directly at " + constants.FallbackContactAddress
)
