package wirely

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/wirely/extension"
	"github.com/viant/wirely/repository"
	"github.com/viant/xreflect"
)

type box struct {
	Size  int
	Label string
}

func newBox(size int, label string) *box {
	return &box{Size: size, Label: label}
}

func TestService_Instantiate(t *testing.T) {
	ctx := context.Background()
	registry := extension.NewRegistry()
	err := registry.Types.Register("Box", xreflect.WithReflectType(reflect.TypeOf(box{})))
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	_, err = registry.RegisterConstructor("NewBox", newBox)
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	service, err := New(ctx,
		repository.WithResourceURL("testdata/resource.yaml"),
		repository.WithExtensions(registry),
	)
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	instance, err := service.Instantiate(ctx, "Box", 7, "spices")
	if assert.Nil(t, err) {
		assert.Equal(t, &box{Size: 7, Label: "spices"}, instance)
	}

	aConstructor, err := service.Constructor(ctx, "Box")
	if assert.Nil(t, err) {
		assert.Equal(t, "Box(int, string)", aConstructor.Signature().String())
	}

	_, err = service.Instantiate(ctx, "Box", 7)
	assert.NotNil(t, err)
}
