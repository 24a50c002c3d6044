package component

import (
	"time"

	"github.com/viant/wirely/logger"
	"github.com/viant/wirely/tags"
	"github.com/viant/wirely/utils/types"
	"github.com/viant/xreflect"
	"reflect"
)

type (
	//Transformer produces parameter sub models and closure sources, it owns
	//the schema cache, the introspector and the build observability hooks
	Transformer struct {
		lookupType   xreflect.LookupType
		schemas      *types.Cache
		introspector Introspector
		interfaces   []reflect.Type
		logger       *logger.Adapter
		counter      *logger.CounterAdapter
	}

	TransformerOption func(t *Transformer)
)

func WithLogger(adapter *logger.Adapter) TransformerOption {
	return func(t *Transformer) {
		t.logger = adapter
	}
}

func WithIntrospector(introspector Introspector) TransformerOption {
	return func(t *Transformer) {
		t.introspector = introspector
	}
}

// WithInterfaces registers candidate interface types for closure resolution
func WithInterfaces(interfaces ...reflect.Type) TransformerOption {
	return func(t *Transformer) {
		t.interfaces = append(t.interfaces, interfaces...)
	}
}

func WithCounter(counter logger.Counter) TransformerOption {
	return func(t *Transformer) {
		t.counter = logger.NewCounter(counter)
	}
}

func NewTransformer(lookupType xreflect.LookupType, opts ...TransformerOption) *Transformer {
	ret := &Transformer{
		lookupType: lookupType,
		schemas:    types.NewCache(lookupType),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
	}
	if ret.counter == nil {
		ret.counter = logger.NewCounter(nil)
	}
	if ret.introspector == nil {
		ret.introspector = NewIntrospector(lookupType)
	}
	return ret
}

func (t *Transformer) Introspector() Introspector {
	return t.introspector
}

func (t *Transformer) LookupType() xreflect.LookupType {
	return t.lookupType
}

// Parameter builds a parameter sub model owned by the supplied constructor
func (t *Transformer) Parameter(tagList []*tags.Tag, rawType reflect.Type, schema *Schema, owner *Constructor, position int) *Parameter {
	return &Parameter{
		position: position,
		rawType:  rawType,
		schema:   schema,
		tags:     tags.BuildMap(tagList),
		owner:    owner,
	}
}

// Schema resolves a symbolic type name into a schema, unresolvable names
// stay symbolic i.e. a type parameter T
func (t *Transformer) Schema(dataType string) *Schema {
	ret := &Schema{DataType: dataType}
	if rType, err := t.schemas.LoadType("", dataType); err == nil {
		ret.SetType(rType)
	}
	return ret
}

// closureSource derives a lazy closure computation over the supplied schema
func (t *Transformer) closureSource(schema *Schema) ClosureSource {
	return func() (Closure, error) {
		if err := schema.Init(t.lookupType); err != nil {
			return nil, err
		}
		ret := closureOf(schema.Type(), t.interfaces...)
		t.logger.ClosureComputed(schema.TypeName(), len(ret))
		return ret, nil
	}
}

// explicitClosureSource resolves an explicitly supplied closure, the schema
// type, its pointer form and each named type
func (t *Transformer) explicitClosureSource(schema *Schema, typeNames []string) ClosureSource {
	return func() (Closure, error) {
		if err := schema.Init(t.lookupType); err != nil {
			return nil, err
		}
		var interfaces []reflect.Type
		for _, typeName := range typeNames {
			rType, err := types.LookupType(t.lookupType, typeName)
			if err != nil {
				return nil, err
			}
			interfaces = append(interfaces, rType)
		}
		ret := closureOf(schema.Type(), interfaces...)
		for _, candidate := range interfaces {
			if !ret.Contains(candidate) {
				ret = append(ret, candidate)
			}
		}
		t.logger.ClosureComputed(schema.TypeName(), len(ret))
		return ret, nil
	}
}

func (t *Transformer) notifyFallback(member *Member, valueTypes, genericTypes int) {
	t.logger.AlignmentFallback(member.Name, valueTypes, genericTypes)
	t.counter.IncrementValue(FallbackClass)
}

func (t *Transformer) notifyBuilt(aConstructor *Constructor, started time.Time) {
	t.logger.ConstructorBuilt(aConstructor.member.Name, aConstructor.schema.TypeName(), len(aConstructor.parameters), time.Since(started))
	onDone := t.counter.Begin(started)
	onDone(time.Now(), SuccessClass)
}

func (t *Transformer) notifyFailed(started time.Time) {
	onDone := t.counter.Begin(started)
	onDone(time.Now(), ErrorClass)
}

const (
	SuccessClass  = "success"
	ErrorClass    = "error"
	FallbackClass = "fallback"
)
