package extension

import (
	"encoding/json"
	"reflect"

	"github.com/viant/wirely/component"
	"github.com/viant/xreflect"
)

var Config *Registry

func init() {
	InitRegistry()
}

func InitRegistry() {
	Config = &Registry{
		Types: xreflect.NewTypes(xreflect.WithTypes(
			xreflect.NewType("RawMessage", xreflect.WithReflectType(reflect.TypeOf(json.RawMessage{}))),
			xreflect.NewType("json.RawMessage", xreflect.WithReflectType(reflect.TypeOf(json.RawMessage{}))),
			xreflect.NewType("time.Time", xreflect.WithReflectType(xreflect.TimeType)),
		)),
		members: map[string]*component.Member{},
	}
}
