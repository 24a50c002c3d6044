package types

import (
	"github.com/viant/xreflect"
	"reflect"
	"sync"
)

type (
	Cache struct {
		cache       sync.Map
		typesLookup xreflect.LookupType
	}

	key struct {
		pkgName  string
		typeName string
	}
)

func NewCache(lookup xreflect.LookupType) *Cache {
	return &Cache{
		cache:       sync.Map{},
		typesLookup: lookup,
	}
}

func (c *Cache) LoadType(pkgName string, typeName string) (reflect.Type, error) {
	aKey := key{
		pkgName:  pkgName,
		typeName: typeName,
	}

	value, ok := c.cache.Load(aKey)
	if ok {
		return value.(reflect.Type), nil
	}

	parseType, err := LookupType(c.typesLookup, typeName)
	if err == nil {
		c.cache.Store(aKey, parseType)
	}

	return parseType, err
}
