package script

import "github.com/ansel1/merry"

var (
	ErrUnknownOp    = merry.New("script: unknown op")
	ErrMissingField = merry.New("script: missing field")
	ErrExpectation  = merry.New("script: expectation failed")
	ErrNoSteps      = merry.New("script: no steps")
)

// StepOf returns the index of the step an error was raised for, or
// -1 if the error carries no step.
func StepOf(err error) int {
	if i, ok := merry.Value(err, "step").(int); ok {
		return i
	}
	return -1
}

func stepError(err error, step int, op string) error {
	return merry.WithValue(merry.WithValue(err, "step", step), "op", op)
}
