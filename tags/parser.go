package tags

import (
	"github.com/viant/tagly/tags"
	"reflect"
)

var builtinKinds = []Kind{KindInject, KindValue, KindDescription}

// Parse extracts metadata tags of the supplied kinds from a struct tag,
// with no kinds supplied the built-in kinds are used
func Parse(tag reflect.StructTag, kinds ...Kind) []*Tag {
	if len(kinds) == 0 {
		kinds = builtinKinds
	}
	var ret []*Tag
	for _, kind := range kinds {
		tagValue, ok := tag.Lookup(string(kind))
		if !ok {
			continue
		}
		ret = append(ret, &Tag{Kind: kind, Values: tags.Values(tagValue)})
	}
	return ret
}
