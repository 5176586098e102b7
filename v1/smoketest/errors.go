package smoketest

import (
	"errors"
	"fmt"
)

// Step names, used in errors, logs, span names and metric labels.
const (
	StepConfigure = "configure"
	StepConnect   = "connect"
	StepRecreate  = "recreate_collection"
	StepUpsert    = "upsert"
	StepCount     = "count"
	StepSearch    = "search"
	StepVerify    = "verify"
	StepReport    = "report"
	StepDelete    = "delete_collection"
)

var (
	ErrDimensionMismatch    = errors.New("vector dimension does not match collection")
	ErrPointCount           = errors.New("stored point count does not match inserted points")
	ErrResultCount          = errors.New("search returned more results than requested")
	ErrUnknownPoint         = errors.New("search returned a point that was never inserted")
	ErrResultOrder          = errors.New("search results are not ordered by descending score")
	ErrCollectionNotDeleted = errors.New("collection still exists after delete")
)

// StepError reports which step of the run failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("smoke test failed at %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step name carried by err, or "" if err does not
// wrap a *StepError.
func FailedStep(err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Step
	}
	return ""
}
