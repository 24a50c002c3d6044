package component

import (
	"fmt"
)

type (
	//DefinitionError represents a parameter count mismatch between a supplied
	//constructor definition and the underlying member
	DefinitionError struct {
		Member   string
		Expected int
		Actual   int
	}

	//ArgumentError represents an invocation argument mismatch
	ArgumentError struct {
		Member   string
		Position int
		Expected string
		Actual   string
	}

	//InstantiationError represents a member that cannot produce an instance
	InstantiationError struct {
		Member string
		Reason string
	}

	//AccessError represents denied access to the underlying member
	AccessError struct {
		Member string
		Reason string
	}

	//TargetError represents a failure raised by the invoked member itself
	TargetError struct {
		Member string
		Err    error
	}
)

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid definition of %v: expected %v parameter(s), but had: %v", e.Member, e.Expected, e.Actual)
}

func (e *ArgumentError) Error() string {
	if e.Position == -1 {
		return fmt.Sprintf("invalid arguments of %v: expected %v, but had: %v", e.Member, e.Expected, e.Actual)
	}
	return fmt.Sprintf("invalid argument %v of %v: expected %v, but had: %v", e.Position, e.Member, e.Expected, e.Actual)
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("unable to instantiate %v: %v", e.Member, e.Reason)
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("unable to access %v: %v", e.Member, e.Reason)
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("constructor %v failed: %v", e.Member, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}
