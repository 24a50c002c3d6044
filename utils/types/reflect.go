package types

import (
	"fmt"
	"github.com/viant/xreflect"
	"reflect"
)

func LookupType(lookupType xreflect.LookupType, dataType string) (reflect.Type, error) {
	lookup, lookupErr := lookupType(dataType)
	if lookupErr == nil {
		return lookup, nil
	}

	parseType, parseErr := xreflect.Parse(dataType, xreflect.WithTypeLookup(lookupType))
	if parseErr == nil {
		return parseType, nil
	}

	return nil, fmt.Errorf("couldn't determine type: %v, due to the: %w, %v", dataType, lookupErr, parseErr)
}
