// Package types holds the JSON envelope shapes shared by every storefront
// endpoint: successful responses wrap their payload in "data", failures in
// "error".
package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError carries a stable machine-readable code alongside a human message.
// Details is optional field-level context, e.g. validator output.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
