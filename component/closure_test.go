package component

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"reflect"
)

type baseModel struct {
	ID int
}

type namedModel struct {
	baseModel
	Name string
}

func (m *namedModel) String() string {
	return m.Name
}

func TestClosureOf(t *testing.T) {
	stringerType := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	var testCases = []struct {
		description string
		rType       reflect.Type
		interfaces  []reflect.Type
		expect      []reflect.Type
	}{
		{
			description: "plain struct",
			rType:       reflect.TypeOf(baseModel{}),
			expect: []reflect.Type{
				reflect.TypeOf(baseModel{}),
				reflect.TypeOf(&baseModel{}),
			},
		},
		{
			description: "embedded chain with implemented interface",
			rType:       reflect.TypeOf(namedModel{}),
			interfaces:  []reflect.Type{stringerType},
			expect: []reflect.Type{
				reflect.TypeOf(namedModel{}),
				reflect.TypeOf(&namedModel{}),
				reflect.TypeOf(baseModel{}),
				stringerType,
			},
		},
		{
			description: "unimplemented interface is excluded",
			rType:       reflect.TypeOf(baseModel{}),
			interfaces:  []reflect.Type{stringerType},
			expect: []reflect.Type{
				reflect.TypeOf(baseModel{}),
				reflect.TypeOf(&baseModel{}),
			},
		},
	}

	for _, testCase := range testCases {
		actual := closureOf(testCase.rType, testCase.interfaces...)
		assert.EqualValues(t, Closure(testCase.expect), actual, testCase.description)
	}
}

func TestClosureHolder_Memoization(t *testing.T) {
	var computed int32
	holder := NewClosureHolder(func() (Closure, error) {
		atomic.AddInt32(&computed, 1)
		return closureOf(reflect.TypeOf(namedModel{})), nil
	})

	first, err := holder.Closure()
	assert.Nil(t, err)
	second, err := holder.Closure()
	assert.Nil(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&computed))
	assert.Equal(t, fmt.Sprintf("%p", first), fmt.Sprintf("%p", second))
}

func TestClosureHolder_ConcurrentFirstAccess(t *testing.T) {
	var computed int32
	holder := NewClosureHolder(func() (Closure, error) {
		atomic.AddInt32(&computed, 1)
		return closureOf(reflect.TypeOf(namedModel{})), nil
	})

	waitGroup := sync.WaitGroup{}
	results := make([]Closure, 16)
	for i := 0; i < len(results); i++ {
		waitGroup.Add(1)
		go func(index int) {
			defer waitGroup.Done()
			results[index], _ = holder.Closure()
		}(i)
	}
	waitGroup.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&computed))
	for _, result := range results {
		assert.Equal(t, fmt.Sprintf("%p", results[0]), fmt.Sprintf("%p", result))
	}
}
