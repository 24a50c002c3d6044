package component

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/wirely/tags"
)

// Constructor models a construction member of a component as an immutable,
// queryable abstraction. It reconciles the runtime reflection view with an
// optional externally supplied, already annotated definition of the same
// member into one canonical parameter sequence.
//
// The model is built once and immutable afterwards, only the type closure
// materializes lazily.
type Constructor struct {
	callable
	member     *Member
	parameters Parameters
	signature  *Signature
}

// NewConstructor builds a constructor model from a raw member. The raw and
// generic type views are both the declaring type and the closure derives
// lazily from it.
func NewConstructor(member *Member, declaring *Component, transformer *Transformer) (*Constructor, error) {
	started := time.Now()
	schema := declaring.Schema
	if err := schema.Init(transformer.LookupType()); err != nil {
		transformer.notifyFailed(started)
		return nil, err
	}
	ret := &Constructor{
		callable: callable{
			declaring:      declaring,
			rawType:        schema.Type(),
			schema:         schema,
			tagMap:         tags.BuildMap(member.Tags()),
			declaredTagMap: tags.BuildMap(member.DeclaredTags()),
			closure:        NewClosureHolder(transformer.closureSource(schema)),
		},
		member: member,
	}
	ret.alignRaw(transformer)
	ret.signature = newSignature(schema.TypeName(), ret.parameters)
	transformer.notifyBuilt(ret, started)
	return ret, nil
}

// NewAnnotatedConstructor builds a constructor model from an externally
// supplied, already annotated definition. The raw type comes from the
// member runtime view, the generic type and the closure come from the
// definition, alignment verifies the definition instead of deriving it.
func NewAnnotatedConstructor(member *Member, definition *ConstructorDefinition, declaring *Component, transformer *Transformer) (*Constructor, error) {
	started := time.Now()
	schema := definition.baseSchema(declaring, transformer)
	if err := schema.Init(transformer.LookupType()); err != nil {
		transformer.notifyFailed(started)
		return nil, err
	}
	tagMap := tags.BuildMap(definition.memberTags())
	ret := &Constructor{
		callable: callable{
			declaring: declaring,
			rawType:   memberRawType(member),
			schema:    schema,
			//an annotated definition does not distinguish present from declared tags
			tagMap:         tagMap,
			declaredTagMap: tagMap,
			closure:        NewClosureHolder(transformer.explicitClosureSource(schema, definition.Implements)),
		},
		member: member,
	}
	if err := ret.alignAnnotated(definition, transformer); err != nil {
		transformer.notifyFailed(started)
		return nil, err
	}
	ret.signature = newSignature(schema.TypeName(), ret.parameters)
	transformer.notifyBuilt(ret, started)
	return ret, nil
}

// alignRaw walks the member formal value types against the generic schema
// and per parameter tag arrays. On an arity drift between both views the
// member is modeled as if it took no parameters, members affected by the
// drift are not eligible for parameter based injection anyway, so degrading
// is safer than failing the whole component model.
func (c *Constructor) alignRaw(transformer *Transformer) {
	introspector := transformer.Introspector()
	valueTypes := introspector.ValueTypes(c.member)
	genericSchemas, parameterTags := introspector.GenericParameters(c.member)

	if len(valueTypes) != len(genericSchemas) {
		transformer.notifyFallback(c.member, len(valueTypes), len(genericSchemas))
		c.parameters = Parameters{}
		return
	}

	nesting := introspector.Nesting(c.member)
	declaration := c.member.Declaration()
	c.parameters = make(Parameters, 0, len(valueTypes))
	for i, valueType := range valueTypes {
		gi := i - nesting
		schema := NewSchema(valueType)
		var tagList []*tags.Tag
		if gi >= 0 && gi < len(genericSchemas) {
			schema = genericSchemas[gi]
			if len(parameterTags[gi]) > 0 {
				tagList = parameterTags[gi]
			}
		}
		parameter := transformer.Parameter(tagList, valueType, schema, c, i)
		if declaration != nil && gi >= 0 && gi < len(declaration.Params) {
			parameter.name = declaration.Params[gi].Name
		}
		c.parameters = append(c.parameters, parameter)
	}
}

// alignAnnotated verifies a supplied definition against the member formal
// value types, a count mismatch is a hard configuration error
func (c *Constructor) alignAnnotated(definition *ConstructorDefinition, transformer *Transformer) error {
	valueTypes := transformer.Introspector().ValueTypes(c.member)
	if len(definition.Parameters) != len(valueTypes) {
		return &DefinitionError{Member: c.member.Name, Expected: len(valueTypes), Actual: len(definition.Parameters)}
	}
	parameters := make(Parameters, len(valueTypes))
	for _, paramDefinition := range definition.Parameters {
		position := paramDefinition.Position
		if position < 0 || position >= len(valueTypes) {
			return fmt.Errorf("invalid definition of %v: parameter position %v out of range [0..%v)", c.member.Name, position, len(valueTypes))
		}
		if parameters[position] != nil {
			return fmt.Errorf("invalid definition of %v: duplicate parameter position %v", c.member.Name, position)
		}
		schema := NewSchema(valueTypes[position])
		if paramDefinition.DataType != "" {
			schema = transformer.Schema(paramDefinition.DataType)
		}
		tagList := tags.Parse(reflect.StructTag(paramDefinition.Tag))
		parameter := transformer.Parameter(tagList, valueTypes[position], schema, c, position)
		parameter.name = paramDefinition.Name
		parameters[position] = parameter
	}
	c.parameters = parameters
	return nil
}

// Member returns the underlying construction member
func (c *Constructor) Member() *Member {
	return c.member
}

// Parameters returns the aligned parameter sequence in positional order,
// possibly empty under the alignment fallback
func (c *Constructor) Parameters() Parameters {
	return c.parameters
}

// ParametersTagged returns parameters carrying a tag of the supplied kind,
// the result is computed at call site and not cached
func (c *Constructor) ParametersTagged(kind tags.Kind) Parameters {
	return c.parameters.Filter(kind)
}

// Signature returns the structural signature, stable after construction
func (c *Constructor) Signature() *Signature {
	return c.signature
}

// IsGeneric returns true if the member declares its own type parameters,
// independently of the declaring type
func (c *Constructor) IsGeneric() bool {
	return c.member.Declaration().IsGeneric()
}

// NewInstance invokes the underlying member with the supplied arguments
func (c *Constructor) NewInstance(args ...interface{}) (interface{}, error) {
	if c.rawType != nil && c.rawType.Kind() == reflect.Interface {
		return nil, &InstantiationError{Member: c.member.Name, Reason: "declaring type " + c.rawType.String() + " is an interface"}
	}
	fnType := c.member.Type()
	if fnType.NumOut() == 0 {
		return nil, &InstantiationError{Member: c.member.Name, Reason: "member yields no value"}
	}
	in, err := c.buildArgs(fnType, args)
	if err != nil {
		return nil, err
	}
	fn, err := c.member.ensureCallable()
	if err != nil {
		return nil, err
	}
	var out []reflect.Value
	if err = c.call(fn, in, &out); err != nil {
		return nil, err
	}
	if last := out[len(out)-1]; last.Type() == errType && !last.IsNil() {
		return nil, &TargetError{Member: c.member.Name, Err: last.Interface().(error)}
	}
	return out[0].Interface(), nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func (c *Constructor) buildArgs(fnType reflect.Type, args []interface{}) ([]reflect.Value, error) {
	expected := fnType.NumIn()
	if fnType.IsVariadic() {
		if len(args) < expected-1 {
			return nil, &ArgumentError{Member: c.member.Name, Position: -1, Expected: fmt.Sprintf("at least %v argument(s)", expected-1), Actual: fmt.Sprintf("%v", len(args))}
		}
	} else if len(args) != expected {
		return nil, &ArgumentError{Member: c.member.Name, Position: -1, Expected: fmt.Sprintf("%v argument(s)", expected), Actual: fmt.Sprintf("%v", len(args))}
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		paramType := argType(fnType, i)
		if arg == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(paramType) {
			return nil, &ArgumentError{Member: c.member.Name, Position: i, Expected: paramType.String(), Actual: value.Type().String()}
		}
		in[i] = value
	}
	return in, nil
}

func argType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}

func (c *Constructor) call(fn reflect.Value, in []reflect.Value, out *[]reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TargetError{Member: c.member.Name, Err: fmt.Errorf("%v", r)}
		}
	}()
	*out = fn.Call(in)
	return nil
}

// Equals compares constructors structurally, base equality, member
// identity and element wise parameter equality, the lazy closure is
// excluded
func (c *Constructor) Equals(other *Constructor) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !c.callable.equals(&other.callable) {
		return false
	}
	return c.member.Equals(other.member) && c.parameters.Equal(other.parameters)
}

// Hash combines member identity and parameter sequence hashes
func (c *Constructor) Hash() int {
	hash := 1
	hash = hash*31 + c.member.Hash()
	hash = hash*31 + c.parameters.Hash()
	return hash
}

// String renders tags, modifiers, declaring type name and the formal
// parameter list, segments separated by a single space when non empty
func (c *Constructor) String() string {
	builder := strings.Builder{}
	builder.WriteString("[constructor]")
	appendSegment(&builder, formatTags(c.tagMap))
	appendSegment(&builder, formatModifiers(c.member))
	appendSegment(&builder, c.schema.TypeName()+c.parameters.String())
	return builder.String()
}

func appendSegment(builder *strings.Builder, segment string) {
	if segment == "" {
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(segment)
}

func formatTags(aMap tags.Map) string {
	kinds := aMap.Kinds()
	if len(kinds) == 0 {
		return ""
	}
	var ret = make([]string, 0, len(kinds))
	for _, kind := range kinds {
		ret = append(ret, "@"+string(kind))
	}
	return strings.Join(ret, " ")
}

func formatModifiers(member *Member) string {
	var ret []string
	if member.IsMethod() {
		ret = append(ret, "method")
	}
	if member.Declaration().IsGeneric() {
		ret = append(ret, "generic")
	}
	return strings.Join(ret, " ")
}

func memberRawType(member *Member) reflect.Type {
	fnType := member.Type()
	if fnType.NumOut() == 0 {
		return nil
	}
	return fnType.Out(0)
}
