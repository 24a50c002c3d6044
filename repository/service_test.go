package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/wirely/extension"
	"github.com/viant/wirely/repository/version"
	"github.com/viant/xreflect"
)

type repoBox struct {
	Size  int
	Label string
}

func newRepoBox(size int, label string) *repoBox {
	return &repoBox{Size: size, Label: label}
}

func testExtensions(t *testing.T) *extension.Registry {
	registry := extension.NewRegistry()
	err := registry.Types.Register("Box", xreflect.WithReflectType(reflect.TypeOf(repoBox{})))
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	_, err = registry.RegisterConstructor("NewBox", newRepoBox)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return registry
}

func TestService_Component(t *testing.T) {
	ctx := context.Background()
	service, err := New(ctx,
		WithResourceURL("testdata/resource.yaml"),
		WithExtensions(testExtensions(t)),
	)
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	aConstructor, err := service.Constructor(ctx, "Box")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	assert.Equal(t, 2, len(aConstructor.Parameters()))
	instance, err := aConstructor.NewInstance(3, "tools")
	if assert.Nil(t, err) {
		assert.Equal(t, &repoBox{Size: 3, Label: "tools"}, instance)
	}

	_, err = service.Component(ctx, "Unknown")
	assert.NotNil(t, err)
}

func TestService_Reload(t *testing.T) {
	ctx := context.Background()
	service, err := New(ctx,
		WithResourceURL("testdata/resource.yaml"),
		WithExtensions(testExtensions(t)),
	)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	revision := service.Version().Revision()
	assert.NotEqual(t, "", revision)
	assert.Equal(t, version.ChangeKindModified, service.Version().ChangeKind())

	before, err := service.Component(ctx, "Box")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	//a stable version serves the cached model
	cached, err := service.Component(ctx, "Box")
	if assert.Nil(t, err) {
		assert.Same(t, before, cached)
	}

	err = service.Reload(ctx)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	assert.NotEqual(t, revision, service.Version().Revision())

	after, err := service.Component(ctx, "Box")
	if assert.Nil(t, err) {
		assert.NotSame(t, before, after)
	}
}
