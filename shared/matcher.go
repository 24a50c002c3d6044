package shared

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
)

// MatchField matches a struct field by name, trying the upper camel form first
func MatchField(rType reflect.Type, name string, sourceCase text.CaseFormat) *xunsafe.Field {
	rType = Elem(rType)
	if rType.Kind() != reflect.Struct {
		return nil
	}
	upperCamelName := sourceCase.Format(name, text.CaseFormatUpperCamel)
	field := xunsafe.FieldByName(rType, upperCamelName)
	if field != nil {
		return field
	}
	name = strings.ToLower(name)
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		if strings.ToLower(sField.Name) == name {
			return xunsafe.NewField(sField)
		}
	}
	return nil
}
