package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) AlignmentFallback() AlignmentFallback {
	return func(member string, valueTypes, genericTypes int) {
		fmt.Printf("[LOGGER] parameter alignment fallback on %v: value types: %v, generic types: %v \n", member, valueTypes, genericTypes)
	}
}

func (d *defaultLogger) ClosureComputed() ClosureComputed {
	return func(typeName string, size int) {
		fmt.Printf("[LOGGER] type closure of %v computed, size: %v \n", typeName, size)
	}
}

func (d *defaultLogger) ConstructorBuilt() ConstructorBuilt {
	return func(member string, declaring string, params int, elapsed time.Duration) {
		fmt.Printf("[LOGGER] constructor %v of %v built with %v param(s), took %v \n", member, declaring, params, elapsed)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}
