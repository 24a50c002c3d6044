package component

import (
	"github.com/viant/xunsafe"
	"reflect"
)

// ensureCallable returns an invocable func value for the member, rebuilding
// an accessible value with xunsafe when the func was sourced from an
// unexported holder field
func (m *Member) ensureCallable() (reflect.Value, error) {
	if m.value.IsValid() && m.value.CanInterface() {
		return m.value, nil
	}
	if m.holder == nil {
		return reflect.Value{}, &AccessError{Member: m.Name, Reason: "member func was not accessible"}
	}
	holderType := reflect.TypeOf(m.holder)
	if holderType.Kind() != reflect.Ptr {
		return reflect.Value{}, &AccessError{Member: m.Name, Reason: "holder was not a pointer"}
	}
	field := xunsafe.FieldByName(holderType.Elem(), m.holderField)
	if field == nil {
		return reflect.Value{}, &AccessError{Member: m.Name, Reason: "unknown holder field " + m.holderField}
	}
	value := field.Value(xunsafe.AsPointer(m.holder))
	ret := reflect.ValueOf(value)
	if ret.Kind() != reflect.Func || ret.IsNil() {
		return reflect.Value{}, &AccessError{Member: m.Name, Reason: "holder field " + m.holderField + " held no func"}
	}
	return ret, nil
}
