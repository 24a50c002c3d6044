package component

import (
	"context"
	"fmt"
	"reflect"

	stags "github.com/viant/tagly/tags"
	"github.com/viant/wirely/shared"
	"github.com/viant/wirely/tags"
	"github.com/viant/wirely/utils/types"
	"github.com/viant/xreflect"
)

type (
	//TypeDefinition represents a named type declaration loadable from a resource
	TypeDefinition struct {
		shared.Reference `json:",omitempty" yaml:",inline"`
		Name             string `json:",omitempty"`
		Package          string `json:",omitempty"`
		DataType         string `json:",omitempty"`
		rType            reflect.Type
	}

	//ConstructorDefinition represents an externally supplied construction
	//member description, with Parameters set it is a pre annotated
	//description expected to be internally consistent
	ConstructorDefinition struct {
		Member     string                 `json:",omitempty"`
		Signature  string                 `json:",omitempty"`
		BaseType   string                 `json:",omitempty"`
		Implements []string               `json:",omitempty"`
		Tags       map[string]string      `json:",omitempty"`
		Parameters []*ParameterDefinition `json:",omitempty"`
	}

	//ParameterDefinition represents one pre annotated parameter with an
	//explicit ordinal position
	ParameterDefinition struct {
		Position int    `json:",omitempty"`
		Name     string `json:",omitempty"`
		DataType string `json:",omitempty"`
		Tag      string `json:",omitempty"`
	}
)

// Init resolves the declared data type against the registry
func (d *TypeDefinition) Init(ctx context.Context, lookupType xreflect.LookupType) error {
	if d.rType != nil {
		return nil
	}
	if d.DataType == "" {
		return fmt.Errorf("dataType of type definition %v was empty", d.Name)
	}
	rType, err := types.LookupType(lookupType, d.DataType)
	if err != nil {
		return err
	}
	d.rType = rType
	return nil
}

func (d *TypeDefinition) Type() reflect.Type {
	return d.rType
}

// Annotated returns true if the definition supplies its own parameter descriptions
func (d *ConstructorDefinition) Annotated() bool {
	return d != nil && d.Parameters != nil
}

func (d *ConstructorDefinition) memberTags() []*tags.Tag {
	if len(d.Tags) == 0 {
		return nil
	}
	var ret []*tags.Tag
	for name, values := range d.Tags {
		ret = append(ret, &tags.Tag{Kind: tags.Kind(name), Values: stags.Values(values)})
	}
	return ret
}

// baseSchema returns the generic type view of the definition, without an
// explicit base type the declaring schema is used
func (d *ConstructorDefinition) baseSchema(declaring *Component, transformer *Transformer) *Schema {
	if d.BaseType == "" {
		return declaring.Schema
	}
	return transformer.Schema(d.BaseType)
}
