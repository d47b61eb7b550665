package contact

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ValidationKind string

const (
	MissingField         ValidationKind = "MissingField"
	InvalidEmail         ValidationKind = "InvalidEmail"
	InvalidNameLength    ValidationKind = "InvalidNameLength"
	InvalidPhoneLength   ValidationKind = "InvalidPhoneLength"
	InvalidMessageLength ValidationKind = "InvalidMessageLength"
)

var validationMessages = map[ValidationKind]string{
	MissingField:         "All fields are required",
	InvalidEmail:         "Invalid email address",
	InvalidNameLength:    "Name must be between 2 and 100 characters",
	InvalidPhoneLength:   "Phone number must be between 7 and 20 characters",
	InvalidMessageLength: "Message must be between 10 and 1000 characters",
}

// ValidationError names the first rule a submission broke.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) Message() string {
	return validationMessages[e.Kind]
}

// Something@something.something, where no part holds whitespace or '@'.
// The class also excludes Unicode separators and U+FEFF.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

const emailTag = "contact_email"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type rule struct {
	kind  ValidationKind
	value func(*SubmitInquiryRequest) string
	tag   string
}

// Checked in order; the first failure wins. Lengths count runes.
var rules = []rule{
	{MissingField, func(r *SubmitInquiryRequest) string { return r.Name }, "required"},
	{MissingField, func(r *SubmitInquiryRequest) string { return r.Email }, "required"},
	{MissingField, func(r *SubmitInquiryRequest) string { return r.Phone }, "required"},
	{MissingField, func(r *SubmitInquiryRequest) string { return r.Message }, "required"},
	{InvalidEmail, func(r *SubmitInquiryRequest) string { return r.Email }, emailTag},
	{InvalidNameLength, func(r *SubmitInquiryRequest) string { return r.Name }, "min=2,max=100"},
	{InvalidPhoneLength, func(r *SubmitInquiryRequest) string { return r.Phone }, "min=7,max=20"},
	{InvalidMessageLength, func(r *SubmitInquiryRequest) string { return r.Message }, "min=10,max=1000"},
}

// ValidateSubmission returns nil or a *ValidationError for the first broken rule.
func ValidateSubmission(req *SubmitInquiryRequest) error {
	if req == nil {
		return &ValidationError{Kind: MissingField}
	}

	for _, r := range rules {
		if err := validate.Var(r.value(req), r.tag); err != nil {
			return &ValidationError{Kind: r.kind}
		}
	}

	return nil
}
