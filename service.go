package wirely

import (
	"context"
	_ "embed"

	"github.com/viant/wirely/component"
	"github.com/viant/wirely/extension"
	"github.com/viant/wirely/repository"
)

//go:embed Version
var Version string

// Service is the wirely facade, a thin layer over the repository and the
// member registry
type Service struct {
	repository *repository.Service
	extensions *extension.Registry
}

func New(ctx context.Context, opts ...repository.Option) (*Service, error) {
	repoService, err := repository.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Service{
		repository: repoService,
		extensions: repoService.Extensions(),
	}, nil
}

func (s *Service) Repository() *repository.Service {
	return s.repository
}

func (s *Service) Extensions() *extension.Registry {
	return s.extensions
}

// RegisterConstructor registers a named construction member
func (s *Service) RegisterConstructor(name string, fn interface{}, opts ...component.MemberOption) (*component.Member, error) {
	return s.extensions.RegisterConstructor(name, fn, opts...)
}

// Component returns a component model by name
func (s *Service) Component(ctx context.Context, name string) (*component.Component, error) {
	return s.repository.Component(ctx, name)
}

// Constructor returns the constructor model of a named component
func (s *Service) Constructor(ctx context.Context, name string) (*component.Constructor, error) {
	return s.repository.Constructor(ctx, name)
}

// Instantiate creates a new instance of a named component
func (s *Service) Instantiate(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	aConstructor, err := s.repository.Constructor(ctx, name)
	if err != nil {
		return nil, err
	}
	return aConstructor.NewInstance(args...)
}
