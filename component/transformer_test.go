package component

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/gmetric/counter"
	"github.com/viant/wirely/tags"
	"github.com/viant/xreflect"
)

type recordingCounter struct {
	begun   int
	classes []interface{}
}

func (c *recordingCounter) Begin(started time.Time) counter.OnDone {
	c.begun++
	return func(end time.Time, values ...interface{}) int64 {
		c.classes = append(c.classes, values...)
		return 0
	}
}

func (c *recordingCounter) IncrementValue(value interface{}) int64 {
	c.classes = append(c.classes, value)
	return 0
}

func countingTransformer(t *testing.T) (*Transformer, *recordingCounter) {
	registry := xreflect.NewTypes()
	if !assert.Nil(t, registry.Register("Box", xreflect.WithReflectType(reflect.TypeOf(testBox{})))) {
		t.FailNow()
	}
	recorder := &recordingCounter{}
	return NewTransformer(registry.Lookup, WithCounter(recorder)), recorder
}

func TestTransformer_BuildMetric(t *testing.T) {

	t.Run("success class", func(t *testing.T) {
		transformer, recorder := countingTransformer(t)
		member, err := NewMember("NewBox", newTestBox)
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		_, err = NewConstructor(member, declaringComponent("Box", reflect.TypeOf(&testBox{})), transformer)
		assert.Nil(t, err)
		assert.Equal(t, 1, recorder.begun)
		assert.Equal(t, []interface{}{SuccessClass}, recorder.classes)
	})

	t.Run("fallback class on arity drift", func(t *testing.T) {
		transformer, recorder := countingTransformer(t)
		member, err := NewMember("NewBox", newTestBox, WithSignature("NewBox(size int) *Box"))
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		_, err = NewConstructor(member, declaringComponent("Box", reflect.TypeOf(&testBox{})), transformer)
		assert.Nil(t, err)
		assert.Contains(t, recorder.classes, FallbackClass)
		assert.Contains(t, recorder.classes, SuccessClass)
	})

	t.Run("error class on definition mismatch", func(t *testing.T) {
		transformer, recorder := countingTransformer(t)
		member, err := NewMember("NewBox", newTestBox)
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		definition := &ConstructorDefinition{
			Member:     "NewBox",
			Parameters: []*ParameterDefinition{{Position: 0, Name: "size", DataType: "int"}},
		}
		_, err = NewAnnotatedConstructor(member, definition, declaringComponent("Box", reflect.TypeOf(&testBox{})), transformer)
		assert.NotNil(t, err)
		assert.Equal(t, 1, recorder.begun)
		assert.Equal(t, []interface{}{ErrorClass}, recorder.classes)
	})

	t.Run("no counter configured", func(t *testing.T) {
		registry := xreflect.NewTypes()
		transformer := NewTransformer(registry.Lookup)
		member, err := NewMember("NewBox", newTestBox)
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		aConstructor, err := NewConstructor(member, declaringComponent("Box", reflect.TypeOf(&testBox{})), transformer)
		assert.Nil(t, err)
		assert.Equal(t, 0, len(aConstructor.ParametersTagged(tags.KindInject)))
	})
}
