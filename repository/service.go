package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/wirely/component"
	"github.com/viant/wirely/extension"
	"github.com/viant/wirely/repository/version"
)

// Service loads declarative resources and serves versioned component models
type Service struct {
	mux      sync.RWMutex
	options  *Options
	resource *component.Resource
	registry *Registry
	control  *version.Control
}

func New(ctx context.Context, opts ...Option) (*Service, error) {
	ret := &Service{
		options:  NewOptions(opts...),
		registry: NewRegistry(),
		control:  &version.Control{},
	}
	if ret.options.resourceURL != "" {
		if err := ret.Reload(ctx); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (s *Service) Version() *version.Control {
	return s.control
}

func (s *Service) Registry() *Registry {
	return s.registry
}

// Extensions returns the member and type registry in use
func (s *Service) Extensions() *extension.Registry {
	return s.options.extensions
}

// Resource returns the most recently loaded resource
func (s *Service) Resource() *component.Resource {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.resource
}

// Reload loads the resource and advances the repository version, providers
// rebuild lazily on next access
func (s *Service) Reload(ctx context.Context) error {
	options := s.options
	resource, err := component.LoadResourceFromURL(ctx, options.resourceURL, options.fs)
	if err != nil {
		return err
	}
	extensions := options.extensions
	err = resource.Init(ctx, extensions.Types, extensions.LookupMember,
		component.WithLogger(options.logger),
		component.WithInterfaces(extensions.Interfaces()...),
		component.WithCounter(constructorCounter(options.metrics)),
	)
	if err != nil {
		return err
	}
	s.mux.Lock()
	s.resource = resource
	s.mux.Unlock()

	var items []*Provider
	for _, aComponent := range resource.Components {
		name := aComponent.Name
		items = append(items, NewProvider(name, s.control, func(ctx context.Context) (*component.Component, error) {
			return s.Resource().Component(name)
		}))
	}
	s.registry.Register(items...)
	s.control.Touch(version.ChangeKindModified, resource.ModTime)
	return nil
}

// Component returns a component model by name
func (s *Service) Component(ctx context.Context, name string) (*component.Component, error) {
	return s.registry.Lookup(ctx, name)
}

// Constructor returns the constructor model of a named component
func (s *Service) Constructor(ctx context.Context, name string) (*component.Constructor, error) {
	aComponent, err := s.Component(ctx, name)
	if err != nil {
		return nil, err
	}
	ret := aComponent.ConstructorModel()
	if ret == nil {
		return nil, fmt.Errorf("component %v declares no constructor", name)
	}
	return ret, nil
}
