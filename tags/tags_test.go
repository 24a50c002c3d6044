package tags

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		kinds       []Kind
		expect      map[Kind]string
	}{
		{
			description: "built-in kinds",
			tag:         reflect.StructTag(`inject:"db,qualifier=primary" description:"main connector"`),
			expect: map[Kind]string{
				KindInject:      "db,qualifier=primary",
				KindDescription: "main connector",
			},
		},
		{
			description: "explicit kind subset",
			tag:         reflect.StructTag(`inject:"db" value:"10"`),
			kinds:       []Kind{KindValue},
			expect: map[Kind]string{
				KindValue: "10",
			},
		},
		{
			description: "no matching kinds",
			tag:         reflect.StructTag(`json:",omitempty"`),
			expect:      map[Kind]string{},
		},
	}

	for _, testCase := range testCases {
		actual := BuildMap(Parse(testCase.tag, testCase.kinds...))
		if !assert.Equal(t, len(testCase.expect), len(actual), testCase.description) {
			continue
		}
		for kind, values := range testCase.expect {
			tag := actual.Lookup(kind)
			if !assert.NotNil(t, tag, testCase.description) {
				continue
			}
			assert.EqualValues(t, values, tag.Values, testCase.description)
		}
	}
}

func TestTag_Inject(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      Inject
	}{
		{
			description: "name with qualifier",
			tag:         reflect.StructTag(`inject:"db,qualifier=primary"`),
			expect:      Inject{Name: "db", Qualifier: "primary"},
		},
		{
			description: "optional flag",
			tag:         reflect.StructTag(`inject:"metrics,optional=true"`),
			expect:      Inject{Name: "metrics", Optional: true},
		},
		{
			description: "pair syntax name",
			tag:         reflect.StructTag(`inject:"name=config"`),
			expect:      Inject{Name: "config"},
		},
	}

	for _, testCase := range testCases {
		aMap := BuildMap(Parse(testCase.tag))
		tag := aMap.Lookup(KindInject)
		if !assert.NotNil(t, tag, testCase.description) {
			continue
		}
		inject, err := tag.Inject()
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, &testCase.expect, inject, testCase.description)
	}
}

func TestMap_Equal(t *testing.T) {
	base := BuildMap(Parse(reflect.StructTag(`inject:"db" value:"10"`)))
	same := BuildMap(Parse(reflect.StructTag(`inject:"db" value:"10"`)))
	other := BuildMap(Parse(reflect.StructTag(`inject:"cache" value:"10"`)))

	assert.True(t, base.Equal(same))
	assert.False(t, base.Equal(other))
	assert.False(t, base.Equal(nil))
}
