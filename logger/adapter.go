package logger

import (
	"github.com/viant/wirely/shared"
	"os"
	"time"
)

type Adapter struct {
	shared.Reference

	alignmentFallback AlignmentFallback
	closureComputed   ClosureComputed
	constructorBuilt  ConstructorBuilt
}

func (l *Adapter) AlignmentFallback(member string, valueTypes, genericTypes int) {
	if l.alignmentFallback == nil {
		return
	}

	l.alignmentFallback(member, valueTypes, genericTypes)
}

func (l *Adapter) ClosureComputed(typeName string, size int) {
	if l.closureComputed == nil {
		return
	}

	l.closureComputed(typeName, size)
}

func (l *Adapter) ConstructorBuilt(member string, declaring string, params int, elapsed time.Duration) {
	if l.constructorBuilt == nil {
		return
	}

	l.constructorBuilt(member, declaring, params, elapsed)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		Reference:         shared.Reference{},
		alignmentFallback: logger.AlignmentFallback(),
		closureComputed:   logger.ClosureComputed(),
		constructorBuilt:  logger.ConstructorBuilt(),
	}
}

func Default() *Adapter {
	if os.Getenv("WIRELY_DEBUG") == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
