package tags

import (
	"github.com/viant/tagly/tags"
	"reflect"
	"sort"
)

type (
	//Kind identifies a metadata tag name i.e. inject
	Kind string

	//Tag represents a single metadata tag with its raw values i.e. inject:"name=db,optional"
	Tag struct {
		Kind   Kind
		Values tags.Values
	}

	//Map indexes tags by kind
	Map map[Kind]*Tag
)

const (
	KindInject      Kind = "inject"
	KindValue       Kind = "value"
	KindDescription Kind = "description"
)

// BuildMap indexes supplied tags by kind, the last tag of a kind wins
func BuildMap(elements []*Tag) Map {
	ret := make(Map, len(elements))
	for _, element := range elements {
		if element == nil {
			continue
		}
		ret[element.Kind] = element
	}
	return ret
}

func (m Map) Lookup(kind Kind) *Tag {
	if len(m) == 0 {
		return nil
	}
	return m[kind]
}

func (m Map) Has(kind Kind) bool {
	return m.Lookup(kind) != nil
}

func (m Map) Kinds() []Kind {
	var ret []Kind
	for kind := range m {
		ret = append(ret, kind)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// Equal compares maps by kind and raw values
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for kind, tag := range m {
		counterpart, ok := other[kind]
		if !ok || counterpart.Values != tag.Values {
			return false
		}
	}
	return true
}

// UpdateTag writes tags of this map back into a struct tag
func (m Map) UpdateTag(tag reflect.StructTag) reflect.StructTag {
	pTags := tags.NewTags(string(tag))
	for _, kind := range m.Kinds() {
		pTags.Set(string(kind), string(m[kind].Values))
	}
	return reflect.StructTag(pTags.Stringify())
}
