package logger

import (
	"time"
)

type AlignmentFallback func(member string, valueTypes, genericTypes int)
type ClosureComputed func(typeName string, size int)
type ConstructorBuilt func(member string, declaring string, params int, elapsed time.Duration)
type Log func(message string, args ...interface{})

type Logger interface {
	AlignmentFallback() AlignmentFallback
	ClosureComputed() ClosureComputed
	ConstructorBuilt() ConstructorBuilt
	Log() Log
}
