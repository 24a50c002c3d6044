package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/wirely/component"
)

type (
	//Registry indexes component providers by name
	Registry struct {
		mux   sync.RWMutex
		index map[string]*Provider
		providers
	}

	providers []*Provider
)

func NewRegistry() *Registry {
	return &Registry{index: map[string]*Provider{}}
}

func (r *Registry) LookupProvider(name string) (*Provider, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("not found component provider %v", name)
	}
	return ret, nil
}

func (r *Registry) Lookup(ctx context.Context, name string) (*component.Component, error) {
	provider, err := r.LookupProvider(name)
	if err != nil {
		return nil, err
	}
	return provider.Component(ctx)
}

func (r *Registry) Register(items ...*Provider) {
	r.mux.Lock()
	defer r.mux.Unlock()
	for i := range items {
		provider := items[i]
		if prev, ok := r.index[provider.name]; ok {
			prev.setBuilder(provider.newComponent)
			continue
		}
		r.index[provider.name] = provider
		r.providers = append(r.providers, provider)
	}
}

func (r *Registry) Providers() []*Provider {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]*Provider, len(r.providers))
	copy(ret, r.providers)
	return ret
}
