package component

import "strings"

// Signature structurally identifies a construction member by its declaring
// type and parameter value types, computed once after parameter alignment
type Signature struct {
	Declaring  string
	ParamTypes []string
}

func newSignature(declaring string, parameters Parameters) *Signature {
	ret := &Signature{Declaring: declaring, ParamTypes: make([]string, 0, len(parameters))}
	for _, parameter := range parameters {
		ret.ParamTypes = append(ret.ParamTypes, parameter.RawType().String())
	}
	return ret
}

func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Declaring != other.Declaring || len(s.ParamTypes) != len(other.ParamTypes) {
		return false
	}
	for i, paramType := range s.ParamTypes {
		if paramType != other.ParamTypes[i] {
			return false
		}
	}
	return true
}

func (s *Signature) String() string {
	return s.Declaring + "(" + strings.Join(s.ParamTypes, ", ") + ")"
}
