package handler

import (
	dErrors "nicgate/pkg/domain-errors"
)

// maxInputLength bounds the raw candidate string. Real NICs are 10 or 12
// characters; the cap rejects abusive payloads before they reach stores.
const maxInputLength = 64

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	NIC string `json:"nic"`
}

// Validate enforces trust-boundary limits only. Lexical and semantic
// verdicts are the service's job; a malformed NIC is a valid request with a
// rejecting verdict.
func (r ValidateRequest) Validate() error {
	if r.NIC == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "nic is required")
	}
	if len(r.NIC) > maxInputLength {
		return dErrors.New(dErrors.CodeInvalidInput, "nic input too long")
	}
	return nil
}
