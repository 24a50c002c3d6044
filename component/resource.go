package component

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"github.com/viant/xreflect"
	"gopkg.in/yaml.v3"
)

// Resource represents a grouped, declaratively loadable set of type and
// component definitions, can be loaded from i.e. yaml file
type Resource struct {
	SourceURL string    `json:",omitempty"`
	ModTime   time.Time `json:",omitempty"`

	Types      []*TypeDefinition `json:",omitempty"`
	Components []*Component      `json:",omitempty"`

	_types       *xreflect.Types
	_components  map[string]*Component
	_transformer *Transformer
	fs           afs.Service
}

func (r *Resource) TypeRegistry() *xreflect.Types {
	return r._types
}

func (r *Resource) LookupType() xreflect.LookupType {
	return r._types.Lookup
}

func (r *Resource) Transformer() *Transformer {
	return r._transformer
}

// Component returns an initialised component by name
func (r *Resource) Component(name string) (*Component, error) {
	ret, ok := r._components[name]
	if !ok {
		return nil, fmt.Errorf("not found component %v at %v", name, r.SourceURL)
	}
	return ret, nil
}

// Init resolves type definitions and builds each component constructor
// model, every component is built independently, the first failure is
// reported with its component identity
func (r *Resource) Init(ctx context.Context, registry *xreflect.Types, lookupMember MemberLookup, opts ...TransformerOption) error {
	if registry == nil {
		registry = xreflect.NewTypes()
	}
	r._types = xreflect.NewTypes(xreflect.WithRegistry(registry))
	for _, definition := range r.Types {
		if err := definition.Init(ctx, r._types.Lookup); err != nil {
			return errors.Wrapf(err, "failed to initialise type definition %v at %v", definition.Name, r.SourceURL)
		}
		if err := r._types.Register(definition.Name, xreflect.WithPackage(definition.Package), xreflect.WithReflectType(definition.Type())); err != nil {
			return err
		}
	}
	r._transformer = NewTransformer(r._types.Lookup, opts...)
	r._components = map[string]*Component{}
	for _, aComponent := range r.Components {
		if err := aComponent.Init(ctx, r._transformer, lookupMember); err != nil {
			return errors.Wrapf(err, "failed to initialise component %v at %v", aComponent.Name, r.SourceURL)
		}
		r._components[aComponent.Name] = aComponent
	}
	return nil
}

// NewResourceFromURL loads and initialises a resource
func NewResourceFromURL(ctx context.Context, URL string, registry *xreflect.Types, lookupMember MemberLookup, opts ...TransformerOption) (*Resource, error) {
	resource, err := LoadResourceFromURL(ctx, URL, afs.New())
	if err != nil {
		return nil, err
	}
	err = resource.Init(ctx, registry, lookupMember, opts...)
	return resource, err
}

// LoadResourceFromURL load resource from URL
func LoadResourceFromURL(ctx context.Context, URL string, fs afs.Service) (*Resource, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}

	object, err := fs.Object(ctx, URL)
	if err != nil {
		return nil, err
	}

	aMap := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &aMap); err != nil {
		return nil, err
	}

	resource := &Resource{}
	err = toolbox.DefaultConverter.AssignConverted(resource, aMap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load resource %v", URL)
	}
	resource.fs = fs
	resource.SourceURL = URL
	resource.ModTime = object.ModTime()
	return resource, nil
}
