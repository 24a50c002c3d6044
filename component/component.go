package component

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/viant/tagly/format/text"
	"github.com/viant/wirely/shared"
	"github.com/viant/xunsafe"
)

type (
	//Component represents the declaring type model owning a constructor abstraction
	Component struct {
		shared.Reference `json:",omitempty" yaml:",inline"`
		Name             string                 `json:",omitempty"`
		Description      string                 `json:",omitempty"`
		Schema           *Schema                `json:",omitempty"`
		Constructor      *ConstructorDefinition `json:",omitempty"`

		_constructor *Constructor
		initialized  bool
	}

	//MemberLookup resolves a registered construction member by name
	MemberLookup func(name string) (*Member, error)
)

func NewComponent(name string, schema *Schema, definition *ConstructorDefinition) *Component {
	return &Component{Name: name, Schema: schema, Constructor: definition}
}

// Init resolves the component schema and builds the constructor model
func (c *Component) Init(ctx context.Context, transformer *Transformer, lookupMember MemberLookup) error {
	if c.initialized {
		return nil
	}
	c.initialized = true
	if c.Schema == nil {
		return fmt.Errorf("component %v schema was empty", c.Name)
	}
	if err := c.Schema.Init(transformer.LookupType()); err != nil {
		return errors.Wrapf(err, "failed to initialise component %v schema", c.Name)
	}
	if c.Constructor == nil {
		return nil
	}
	memberName := shared.FirstNotEmpty(c.Constructor.Member, "New"+c.Name)
	member, err := lookupMember(memberName)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve constructor member of component %v", c.Name)
	}
	if member, err = member.AttachSignature(c.Constructor.Signature); err != nil {
		return err
	}
	if c.Constructor.Annotated() {
		c._constructor, err = NewAnnotatedConstructor(member, c.Constructor, c, transformer)
	} else {
		c._constructor, err = NewConstructor(member, c, transformer)
	}
	return err
}

// ConstructorModel returns the constructor abstraction, nil when the
// component declares no construction member
func (c *Component) ConstructorModel() *Constructor {
	return c._constructor
}

// MatchField matches a produced type field by parameter name, used to
// diagnose injectable parameter and field drift
func (c *Component) MatchField(name string) *xunsafe.Field {
	if c.Schema == nil || c.Schema.Type() == nil {
		return nil
	}
	return shared.MatchField(c.Schema.Type(), name, text.CaseFormatLowerCamel)
}
