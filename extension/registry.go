package extension

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/viant/wirely/component"
	"github.com/viant/xreflect"
)

// Registry holds globally registered construction members, named types and
// candidate interfaces for closure resolution
type Registry struct {
	sync.Mutex
	Types      *xreflect.Types
	members    map[string]*component.Member
	interfaces []reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		Types:   xreflect.NewTypes(xreflect.WithRegistry(Config.Types)),
		members: map[string]*component.Member{},
	}
}

// RegisterConstructor registers a named construction member
func (r *Registry) RegisterConstructor(name string, fn interface{}, opts ...component.MemberOption) (*component.Member, error) {
	member, err := component.NewMember(name, fn, opts...)
	if err != nil {
		return nil, err
	}
	r.Lock()
	defer r.Unlock()
	r.members[name] = member
	return member, nil
}

// LookupMember resolves a registered member by name
func (r *Registry) LookupMember(name string) (*component.Member, error) {
	r.Lock()
	defer r.Unlock()
	ret, ok := r.members[name]
	if !ok {
		return nil, fmt.Errorf("not found constructor member %v", name)
	}
	return ret, nil
}

func (r *Registry) Members() []string {
	r.Lock()
	defer r.Unlock()
	var ret = make([]string, 0, len(r.members))
	for name := range r.members {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// RegisterInterface registers a named interface as a closure resolution candidate
func (r *Registry) RegisterInterface(name string, rType reflect.Type) error {
	if rType.Kind() != reflect.Interface {
		return fmt.Errorf("type %v was not an interface, but %v", name, rType.Kind())
	}
	r.Lock()
	defer r.Unlock()
	if err := r.Types.Register(name, xreflect.WithReflectType(rType)); err != nil {
		return err
	}
	r.interfaces = append(r.interfaces, rType)
	return nil
}

// Interfaces returns a snapshot of registered closure candidates
func (r *Registry) Interfaces() []reflect.Type {
	r.Lock()
	defer r.Unlock()
	ret := make([]reflect.Type, len(r.interfaces))
	copy(ret, r.interfaces)
	return ret
}

func (r *Registry) AddTypes(pkgName string, types []reflect.Type) {
	r.Lock()
	defer r.Unlock()
	for _, rType := range types {
		_ = r.Types.Register(rType.Name(), xreflect.WithPackage(pkgName), xreflect.WithReflectType(rType))
	}
}
