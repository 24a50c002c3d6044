package component

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xreflect"
)

func TestSchema_Init(t *testing.T) {
	registry := xreflect.NewTypes()
	if !assert.Nil(t, registry.Register("Box", xreflect.WithReflectType(reflect.TypeOf(testBox{})))) {
		t.FailNow()
	}

	t.Run("resolved by name", func(t *testing.T) {
		schema := &Schema{Name: "Box"}
		if !assert.Nil(t, schema.Init(registry.Lookup)) {
			t.FailNow()
		}
		assert.Equal(t, reflect.TypeOf(testBox{}), schema.Type())
		if assert.NotNil(t, schema.XType()) {
			assert.Equal(t, schema.Type(), schema.XType().Type())
		}
		assert.Equal(t, "Box", schema.TypeName())
	})

	t.Run("runtime schema", func(t *testing.T) {
		schema := NewSchema(reflect.TypeOf(&testBox{}))
		assert.Nil(t, schema.Init(registry.Lookup))
		assert.NotNil(t, schema.XType())
		assert.Equal(t, "*component.testBox", schema.TypeName())
	})

	t.Run("unknown type", func(t *testing.T) {
		schema := &Schema{DataType: "Unknown"}
		assert.NotNil(t, schema.Init(registry.Lookup))
	})

	t.Run("empty schema", func(t *testing.T) {
		schema := &Schema{}
		assert.NotNil(t, schema.Init(registry.Lookup))
	})
}
