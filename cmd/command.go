package cmd

import (
	"context"
	"errors"
	"fmt"

	soptions "github.com/viant/wirely/cmd/options"
	"github.com/viant/wirely/component"
	"github.com/viant/wirely/repository"
)

type Service struct {
}

func New() *Service {
	return &Service{}
}

func (s *Service) Exec(ctx context.Context, options *soptions.Options) error {
	switch {
	case options.Inspect != nil:
		return s.inspect(ctx, options.Inspect)
	case options.Validate != nil:
		return s.validate(ctx, options.Validate)
	}
	return fmt.Errorf("no command specified, see --help")
}

func (s *Service) inspect(ctx context.Context, options *soptions.Inspect) error {
	repo, err := repository.New(ctx, repository.WithResourceURL(options.ResourceURL))
	if err != nil {
		return err
	}
	resource := repo.Resource()
	for _, aComponent := range resource.Components {
		if options.Component != "" && aComponent.Name != options.Component {
			continue
		}
		s.render(aComponent, options.Closure)
	}
	return nil
}

func (s *Service) render(aComponent *component.Component, closure bool) {
	fmt.Printf("component: %v\n", aComponent.Name)
	aConstructor := aComponent.ConstructorModel()
	if aConstructor == nil {
		fmt.Println("  no constructor")
		return
	}
	fmt.Printf("  %v\n", aConstructor)
	fmt.Printf("  signature: %v\n", aConstructor.Signature())
	for _, parameter := range aConstructor.Parameters() {
		fmt.Printf("  param %v: %v %v tags: %v\n", parameter.Position(), parameter.Name(), parameter.Schema().TypeName(), parameter.Tags().Kinds())
	}
	if closure {
		typeClosure, err := aConstructor.TypeClosure()
		if err != nil {
			fmt.Printf("  closure error: %v\n", err)
			return
		}
		fmt.Printf("  closure: %v\n", typeClosure.TypeNames())
	}
}

func (s *Service) validate(ctx context.Context, options *soptions.Validate) error {
	repo, err := repository.New(ctx, repository.WithResourceURL(options.ResourceURL))
	if err != nil {
		var definitionError *component.DefinitionError
		if errors.As(err, &definitionError) {
			return fmt.Errorf("definition error: expected %v parameter(s) of %v, but had: %v", definitionError.Expected, definitionError.Member, definitionError.Actual)
		}
		return err
	}
	for _, aComponent := range repo.Resource().Components {
		s.reportDrift(aComponent)
	}
	fmt.Println("resource is valid")
	return nil
}

// reportDrift warns on injectable parameters matching no field of the
// produced type
func (s *Service) reportDrift(aComponent *component.Component) {
	aConstructor := aComponent.ConstructorModel()
	if aConstructor == nil {
		return
	}
	for _, parameter := range aConstructor.Parameters() {
		if parameter.Name() == "" {
			continue
		}
		if aComponent.MatchField(parameter.Name()) == nil {
			fmt.Printf("warning: %v: parameter %v matches no %v field\n", aComponent.Name, parameter.Name(), aComponent.Schema.TypeName())
		}
	}
}
