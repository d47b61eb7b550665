package contact

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errNullBody = errors.New("request body is null")

var submissionFields = []string{"name", "email", "phone", "message"}

// decodeSubmission parses a contact form body. Any JSON value other than null
// is accepted; only an object carries fields, so an array or scalar decodes to
// an empty submission. A field that is absent, null, false, 0 or "" counts as
// missing. Other non-string field values are rejected.
func decodeSubmission(raw []byte) (*SubmitInquiryRequest, error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode contact body: %w", err)
	}

	if payload == nil {
		return nil, errNullBody
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return &SubmitInquiryRequest{}, nil
	}

	values := make([]string, len(submissionFields))
	for i, key := range submissionFields {
		value, err := fieldString(obj, key)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}

	return &SubmitInquiryRequest{
		Name:    values[0],
		Email:   values[1],
		Phone:   values[2],
		Message: values[3],
	}, nil
}

func fieldString(obj map[string]any, key string) (string, error) {
	switch v := obj[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if !v {
			return "", nil
		}
	case float64:
		if v == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("contact field %q must be a string", key)
}
