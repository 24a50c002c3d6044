package component

import (
	"strings"

	"github.com/viant/wirely/tags"
	"reflect"
)

type (
	//Parameter represents one formal parameter of a construction member
	Parameter struct {
		position int
		name     string
		rawType  reflect.Type
		schema   *Schema
		tags     tags.Map
		owner    *Constructor
	}

	//Parameters represents an ordered parameter sequence
	Parameters []*Parameter
)

func (p *Parameter) Position() int {
	return p.position
}

func (p *Parameter) Name() string {
	return p.name
}

// RawType returns the runtime value type
func (p *Parameter) RawType() reflect.Type {
	return p.rawType
}

// Schema returns the generic type view
func (p *Parameter) Schema() *Schema {
	return p.schema
}

func (p *Parameter) Tags() tags.Map {
	return p.tags
}

// Owner returns the owning constructor
func (p *Parameter) Owner() *Constructor {
	return p.owner
}

// Equal compares parameters by value type, generic type, tags and position,
// the owner back-reference is excluded
func (p *Parameter) Equal(other *Parameter) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.position == other.position &&
		p.rawType == other.rawType &&
		p.schema.TypeName() == other.schema.TypeName() &&
		p.tags.Equal(other.tags)
}

func (p *Parameter) Hash() int {
	hash := 1
	hash = hash*31 + p.position
	hash = hash*31 + stringHash(p.rawType.String())
	hash = hash*31 + stringHash(p.schema.TypeName())
	for _, kind := range p.tags.Kinds() {
		hash = hash*31 + stringHash(string(kind))
	}
	return hash
}

func (p Parameters) Equal(other Parameters) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (p Parameters) Hash() int {
	hash := 1
	for _, parameter := range p {
		hash = hash*31 + parameter.Hash()
	}
	return hash
}

// Filter returns parameters carrying a tag of the supplied kind
func (p Parameters) Filter(kind tags.Kind) Parameters {
	ret := Parameters{}
	for _, parameter := range p {
		if parameter.tags.Has(kind) {
			ret = append(ret, parameter)
		}
	}
	return ret
}

// String renders the formal parameter list i.e. (int, string)
func (p Parameters) String() string {
	builder := strings.Builder{}
	builder.WriteByte('(')
	for i, parameter := range p {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(parameter.rawType.String())
	}
	builder.WriteByte(')')
	return builder.String()
}

func stringHash(text string) int {
	hash := 0
	for _, r := range text {
		hash = hash*31 + int(r)
	}
	return hash
}
