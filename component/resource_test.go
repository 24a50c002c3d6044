package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/assertly"
	"github.com/viant/wirely/tags"
	"github.com/viant/xreflect"
	"reflect"
)

type labeled interface {
	Label() string
}

func testTypeRegistry(t *testing.T) *xreflect.Types {
	registry := xreflect.NewTypes()
	if !assert.Nil(t, registry.Register("Box", xreflect.WithReflectType(reflect.TypeOf(testBox{})))) {
		t.FailNow()
	}
	labeledType := reflect.TypeOf((*labeled)(nil)).Elem()
	if !assert.Nil(t, registry.Register("Labeled", xreflect.WithReflectType(labeledType))) {
		t.FailNow()
	}
	return registry
}

func testMemberLookup(t *testing.T) MemberLookup {
	member, err := NewMember("NewBox", newTestBox)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	members := map[string]*Member{"NewBox": member}
	return func(name string) (*Member, error) {
		ret, ok := members[name]
		if !ok {
			return nil, assert.AnError
		}
		return ret, nil
	}
}

func TestResource_Init(t *testing.T) {
	ctx := context.Background()
	resource, err := LoadResourceFromURL(ctx, "testdata/resource.yaml", afs.New())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	err = resource.Init(ctx, testTypeRegistry(t), testMemberLookup(t))
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	//declared type definitions join the resource registry
	entryType, err := resource.TypeRegistry().Lookup("Entry")
	assert.Nil(t, err)
	assert.Equal(t, reflect.Struct, entryType.Kind())

	aComponent, err := resource.Component("Box")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	aConstructor := aComponent.ConstructorModel()
	if !assert.NotNil(t, aConstructor) {
		t.FailNow()
	}
	assert.Equal(t, 2, len(aConstructor.Parameters()))
	tagged := aConstructor.ParametersTagged(tags.KindInject)
	if assert.Equal(t, 1, len(tagged)) {
		assert.Equal(t, 1, tagged[0].Position())
		assert.Equal(t, "label", tagged[0].Name())
	}
	assertly.AssertValues(t, `{"Declaring":"Box","ParamTypes":["int","string"]}`, aConstructor.Signature())

	//parameter names resolve to produced type fields
	assert.NotNil(t, aComponent.MatchField("size"))
	assert.NotNil(t, aComponent.MatchField("label"))
	assert.Nil(t, aComponent.MatchField("owner"))

	annotated, err := resource.Component("AnnotatedBox")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	annotatedConstructor := annotated.ConstructorModel()
	if !assert.NotNil(t, annotatedConstructor) {
		t.FailNow()
	}
	assert.Equal(t, 2, len(annotatedConstructor.Parameters()))
	assert.Equal(t, "size", annotatedConstructor.Parameters()[0].Name())

	//explicitly supplied closure source
	closure, err := annotatedConstructor.TypeClosure()
	if assert.Nil(t, err) {
		assert.True(t, closure.Contains(reflect.TypeOf((*labeled)(nil)).Elem()))
		assert.True(t, closure.Contains(reflect.TypeOf(testBox{})))
	}
}

func TestResource_InitMismatch(t *testing.T) {
	ctx := context.Background()
	resource, err := LoadResourceFromURL(ctx, "testdata/mismatch.yaml", afs.New())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	err = resource.Init(ctx, testTypeRegistry(t), testMemberLookup(t))
	if !assert.NotNil(t, err) {
		t.FailNow()
	}
	var definitionError *DefinitionError
	if assert.ErrorAs(t, err, &definitionError) {
		assert.Equal(t, 2, definitionError.Expected)
		assert.Equal(t, 1, definitionError.Actual)
	}
}
