package component

import (
	"fmt"
	"github.com/viant/wirely/shared"
	"github.com/viant/wirely/utils/types"
	"github.com/viant/xreflect"
	"github.com/viant/xunsafe"
	"reflect"
)

// Schema represents a symbolic or runtime Go type view
type Schema struct {
	Package  string `json:",omitempty" yaml:"package,omitempty"`
	Name     string `json:",omitempty" yaml:"name,omitempty"`
	DataType string `json:",omitempty" yaml:"dataType,omitempty"`

	rType       reflect.Type
	xType       *xunsafe.Type
	initialized bool
}

func NewSchema(rType reflect.Type) *Schema {
	result := &Schema{initialized: true}
	result.SetType(rType)
	return result
}

func (s *Schema) TypeName() string {
	name := shared.FirstNotEmpty(s.Name, s.DataType)
	if name == "" && s.rType != nil {
		name = s.rType.String()
	}
	if s.Package == "" {
		return name
	}
	return s.Package + "." + name
}

// Type returns the underlying reflect type
func (s *Schema) Type() reflect.Type {
	return s.rType
}

func (s *Schema) SetType(rType reflect.Type) {
	s.rType = rType
	s.xType = xunsafe.NewType(rType)
}

// XType returns the type as *xunsafe.Type
func (s *Schema) XType() *xunsafe.Type {
	return s.xType
}

// Init resolves the schema type with the supplied registry lookup
func (s *Schema) Init(lookupType xreflect.LookupType) error {
	if s.initialized {
		return nil
	}
	s.initialized = true

	if s.rType != nil {
		s.xType = xunsafe.NewType(s.rType)
		return nil
	}
	typeName := s.TypeName()
	if typeName == "" {
		return fmt.Errorf("schema was empty")
	}
	rType, err := types.LookupType(lookupType, typeName)
	if err != nil {
		return err
	}
	s.SetType(rType)
	return nil
}
