package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/wirely/component"
	"github.com/viant/wirely/repository/version"
)

// Provider lazily supplies a component model, rebuilding it only when the
// repository sequence change number moves
type Provider struct {
	mux          sync.RWMutex
	name         string
	control      *version.Control
	newComponent func(ctx context.Context) (*component.Component, error)
	component    *component.Component
	scn          int64
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Component(ctx context.Context) (*component.Component, error) {
	p.mux.RLock()
	ret := p.component
	inSync := ret != nil && p.scn == atomic.LoadInt64(&p.control.SCN)
	p.mux.RUnlock()
	if inSync {
		return ret, nil
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.control.ChangeKind() == version.ChangeKindDeleted {
		return nil, fmt.Errorf("component %v is no longer available", p.name)
	}
	aComponent, err := p.newComponent(ctx)
	if err != nil {
		return nil, err
	}
	p.component = aComponent
	p.scn = atomic.LoadInt64(&p.control.SCN)
	return aComponent, nil
}

// setBuilder swaps the component builder of an already published provider
func (p *Provider) setBuilder(newComponent func(ctx context.Context) (*component.Component, error)) {
	p.mux.Lock()
	p.newComponent = newComponent
	p.mux.Unlock()
}

func NewProvider(name string, control *version.Control, newComponent func(ctx context.Context) (*component.Component, error)) *Provider {
	return &Provider{name: name, control: control, newComponent: newComponent}
}
