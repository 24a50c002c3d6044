package component

import (
	"github.com/viant/wirely/tags"
	"reflect"
)

// callable is the shared base of introspected construction members, it holds
// the declaring component, the raw and generic type views, the metadata tag
// maps and the lazily materialized type closure
type callable struct {
	declaring      *Component
	rawType        reflect.Type
	schema         *Schema
	tagMap         tags.Map
	declaredTagMap tags.Map
	closure        *ClosureHolder
}

// Declaring returns the declaring component
func (c *callable) Declaring() *Component {
	return c.declaring
}

// RawType returns the raw declaring type
func (c *callable) RawType() reflect.Type {
	return c.rawType
}

// Schema returns the generic type view
func (c *callable) Schema() *Schema {
	return c.schema
}

// Tags returns the present metadata tag map
func (c *callable) Tags() tags.Map {
	return c.tagMap
}

// DeclaredTags returns the declared only metadata tag map
func (c *callable) DeclaredTags() tags.Map {
	return c.declaredTagMap
}

// TypeClosure returns the memoized generic supertype closure
func (c *callable) TypeClosure() (Closure, error) {
	return c.closure.Closure()
}

func (c *callable) equals(other *callable) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.rawType == other.rawType &&
		c.schema.TypeName() == other.schema.TypeName() &&
		c.tagMap.Equal(other.tagMap)
}
