package core

import (
	"encoding/json"
	"fmt"
)

// Failure is the uniform shape of a request that produced no decodable
// payload. Reason mirrors the HTTP reason phrase.
type Failure struct {
	Reason  string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if f.Message == "" {
		return fmt.Sprintf("%d %s", f.Status, f.Reason)
	}
	return fmt.Sprintf("%d %s: %s", f.Status, f.Reason, f.Message)
}

// Result is either a decoded JSON payload or a Failure. A decoded payload may
// itself describe an API error; Result does not interpret it.
type Result struct {
	data    any
	raw     []byte
	status  int
	failure *Failure
}

func Success(data any, raw []byte, status int) Result {
	return Result{
		data:   data,
		raw:    append([]byte(nil), raw...),
		status: status,
	}
}

func Fail(reason string, status int, message string) Result {
	return Result{
		status: status,
		failure: &Failure{
			Reason:  reason,
			Status:  status,
			Message: message,
		},
	}
}

func (r Result) OK() bool {
	return r.failure == nil
}

// Data is the decoded JSON value, nil for failures and empty bodies.
func (r Result) Data() any {
	return r.data
}

func (r Result) Raw() []byte {
	return append([]byte(nil), r.raw...)
}

func (r Result) StatusCode() int {
	return r.status
}

func (r Result) Failure() *Failure {
	if r.failure == nil {
		return nil
	}
	copied := *r.failure
	return &copied
}

// Err returns the failure as an error, nil on success.
func (r Result) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.Failure()
}

// Decode unmarshals the raw payload into v. Failures are returned as errors;
// an empty payload leaves v untouched.
func (r Result) Decode(v any) error {
	if r.failure != nil {
		return r.Failure()
	}
	if len(r.raw) == 0 {
		return nil
	}
	return json.Unmarshal(r.raw, v)
}
