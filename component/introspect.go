package component

import (
	"github.com/viant/wirely/tags"
	"github.com/viant/wirely/utils/types"
	"github.com/viant/xreflect"
	"reflect"
)

type (
	//Introspector yields the raw reflection views of a construction member:
	//formal value types, generic parameter schemas with per parameter tags
	//and the nesting level of synthetic leading parameters
	Introspector interface {
		ValueTypes(member *Member) []reflect.Type
		GenericParameters(member *Member) ([]*Schema, [][]*tags.Tag)
		Nesting(member *Member) int
	}

	introspector struct {
		schemas *types.Cache
	}
)

func NewIntrospector(lookupType xreflect.LookupType) Introspector {
	return &introspector{schemas: types.NewCache(lookupType)}
}

func (i *introspector) ValueTypes(member *Member) []reflect.Type {
	fnType := member.Type()
	ret := make([]reflect.Type, 0, fnType.NumIn())
	for j := 0; j < fnType.NumIn(); j++ {
		ret = append(ret, fnType.In(j))
	}
	return ret
}

// GenericParameters returns the declared generic view of the member
// parameters, with no declaration attached the runtime view is used
func (i *introspector) GenericParameters(member *Member) ([]*Schema, [][]*tags.Tag) {
	declaration := member.Declaration()
	if declaration == nil {
		valueTypes := i.ValueTypes(member)
		schemas := make([]*Schema, 0, len(valueTypes))
		tagList := make([][]*tags.Tag, len(valueTypes))
		for _, valueType := range valueTypes {
			schemas = append(schemas, NewSchema(valueType))
		}
		return schemas, tagList
	}

	schemas := make([]*Schema, 0, len(declaration.Params))
	tagList := make([][]*tags.Tag, 0, len(declaration.Params))
	for _, param := range declaration.Params {
		schema := &Schema{DataType: param.DataType}
		if rType, err := i.schemas.LoadType("", param.DataType); err == nil {
			schema.SetType(rType)
		}
		schemas = append(schemas, schema)
		tagList = append(tagList, tags.Parse(param.Tag))
	}
	return schemas, tagList
}

func (i *introspector) Nesting(member *Member) int {
	return member.Nesting()
}
