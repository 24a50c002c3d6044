package decl

import (
	"reflect"
	"strings"
)

type (
	//Declaration represents a parsed constructor signature declaration
	//i.e. NewBox[T any](box Box 'inject:"name=box"', count int) *Box
	Declaration struct {
		Name       string
		TypeParams []string
		Params     []*Param
		Result     string
		Raw        string
	}

	//Param represents a single declared parameter
	Param struct {
		Name     string
		DataType string
		Tag      reflect.StructTag
	}
)

// IsGeneric returns true if the declaration carries its own type parameters
func (d *Declaration) IsGeneric() bool {
	return d != nil && len(d.TypeParams) > 0
}

func (d *Declaration) Stringify() string {
	builder := strings.Builder{}
	builder.WriteString(d.Name)
	if len(d.TypeParams) > 0 {
		builder.WriteByte('[')
		builder.WriteString(strings.Join(d.TypeParams, ", "))
		builder.WriteByte(']')
	}
	builder.WriteByte('(')
	for i, param := range d.Params {
		if i > 0 {
			builder.WriteString(", ")
		}
		if param.Name != "" {
			builder.WriteString(param.Name)
			builder.WriteByte(' ')
		}
		builder.WriteString(param.DataType)
		if param.Tag != "" {
			builder.WriteString(" '")
			builder.WriteString(string(param.Tag))
			builder.WriteByte('\'')
		}
	}
	builder.WriteByte(')')
	if d.Result != "" {
		builder.WriteByte(' ')
		builder.WriteString(d.Result)
	}
	return builder.String()
}
