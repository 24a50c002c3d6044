package component

import (
	"reflect"
	"sync"
)

type (
	//Closure represents the set of generic supertypes reachable from a type:
	//the type itself, its pointer form, transitively embedded types and
	//registered interfaces the type implements
	Closure []reflect.Type

	//ClosureSource computes a closure
	ClosureSource func() (Closure, error)

	//ClosureHolder memoizes a closure computation, first access wins
	ClosureHolder struct {
		sync.Once
		source  ClosureSource
		closure Closure
		err     error
	}
)

func (c Closure) Contains(rType reflect.Type) bool {
	for _, candidate := range c {
		if candidate == rType {
			return true
		}
	}
	return false
}

func (c Closure) TypeNames() []string {
	var ret = make([]string, 0, len(c))
	for _, rType := range c {
		ret = append(ret, rType.String())
	}
	return ret
}

func NewClosureHolder(source ClosureSource) *ClosureHolder {
	return &ClosureHolder{source: source}
}

// Closure returns the memoized closure, computing it on first access
func (h *ClosureHolder) Closure() (Closure, error) {
	h.Do(func() {
		h.closure, h.err = h.source()
	})
	return h.closure, h.err
}

// closureOf computes the generic supertype closure of a type against
// candidate interface types
func closureOf(rType reflect.Type, interfaces ...reflect.Type) Closure {
	var ret Closure
	seen := map[reflect.Type]bool{}
	appendType := func(candidate reflect.Type) {
		if candidate == nil || seen[candidate] {
			return
		}
		seen[candidate] = true
		ret = append(ret, candidate)
	}

	appendType(rType)
	if rType.Kind() != reflect.Ptr {
		appendType(reflect.PtrTo(rType))
	}
	appendEmbedded(rType, appendType)

	for _, iface := range interfaces {
		if iface.Kind() != reflect.Interface {
			continue
		}
		if rType.Implements(iface) || reflect.PtrTo(rType).Implements(iface) {
			appendType(iface)
		}
	}
	return ret
}

func appendEmbedded(rType reflect.Type, appendType func(reflect.Type)) {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !field.Anonymous {
			continue
		}
		appendType(field.Type)
		appendEmbedded(field.Type, appendType)
	}
}
