package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// EnvelopeVersion is the wire format version reported in every response.
// Bump only when the envelope structure itself changes.
const EnvelopeVersion = "1"

// successEnvelope wraps successful response bodies.
type successEnvelope struct {
	V       string `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
}

// simpleErrorEnvelope carries a plain error message.
type simpleErrorEnvelope struct {
	V       string `json:"v"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// detailedErrorEnvelope carries a machine-readable code plus details.
type detailedErrorEnvelope struct {
	V       string `json:"v"`
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the versioned envelope.
// Clients rely on the "v" field name exactly; do not rename it.
//
// Success:  {"v":"1","success":true,"data":...}
// Error:    {"v":"1","success":false,"error":"..."} or
//           {"v":"1","success":false,"code":"...","message":"...","details":...}
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		if apiErr.Code == "" && apiErr.Details == nil {
			return &simpleErrorEnvelope{
				V:       EnvelopeVersion,
				Success: false,
				Error:   apiErr.Message,
			}, nil
		}
		return &detailedErrorEnvelope{
			V:       EnvelopeVersion,
			Success: false,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	if err, ok := v.(error); ok {
		return &simpleErrorEnvelope{
			V:       EnvelopeVersion,
			Success: false,
			Error:   err.Error(),
		}, nil
	}

	return &successEnvelope{
		V:       EnvelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
