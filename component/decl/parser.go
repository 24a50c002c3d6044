package decl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
)

// Parse parses a constructor signature declaration
func Parse(signature string) (*Declaration, error) {
	cursor := parsly.NewCursor("", []byte(signature), 0)
	matched := cursor.MatchAfterOptional(whitespaceMatcher, identifierMatcher)
	if matched.Code != identifierToken {
		return nil, cursor.NewError(identifierMatcher)
	}
	ret := &Declaration{Name: matched.Text(cursor), Raw: strings.TrimSpace(signature)}

	matched = cursor.MatchAfterOptional(whitespaceMatcher, bracketBlockMatcher, parenthesesBlockMatcher)
	if matched.Code == bracketBlockToken {
		block := matched.Text(cursor)
		for _, fragment := range splitTopLevel(block[1 : len(block)-1]) {
			if fragment = strings.TrimSpace(fragment); fragment != "" {
				ret.TypeParams = append(ret.TypeParams, fragment)
			}
		}
		matched = cursor.MatchAfterOptional(whitespaceMatcher, parenthesesBlockMatcher)
	}
	if matched.Code != parenthesesBlockToken {
		return nil, cursor.NewError(parenthesesBlockMatcher)
	}
	block := matched.Text(cursor)
	for _, fragment := range splitTopLevel(block[1 : len(block)-1]) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		param, err := parseParam(fragment)
		if err != nil {
			return nil, fmt.Errorf("invalid declaration %v, %w", ret.Name, err)
		}
		ret.Params = append(ret.Params, param)
	}
	ret.Result = strings.TrimSpace(string(cursor.Input[cursor.Pos:]))
	return ret, nil
}

func parseParam(fragment string) (*Param, error) {
	ret := &Param{}
	if index := strings.IndexByte(fragment, '\''); index != -1 {
		closing := strings.LastIndexByte(fragment, '\'')
		if closing == index {
			return nil, fmt.Errorf("unterminated tag in %q", strings.TrimSpace(fragment))
		}
		ret.Tag = reflect.StructTag(fragment[index+1 : closing])
		fragment = fragment[:index] + fragment[closing+1:]
	}
	fields := strings.Fields(fragment)
	switch len(fields) {
	case 0:
		return nil, fmt.Errorf("missing parameter type in %q", strings.TrimSpace(fragment))
	case 1:
		ret.DataType = fields[0]
	default:
		ret.Name = fields[0]
		ret.DataType = strings.Join(fields[1:], " ")
	}
	return ret, nil
}

// splitTopLevel splits on commas outside nested blocks and quotes
func splitTopLevel(text string) []string {
	var ret []string
	depth := 0
	quoted := false
	begin := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\'':
			if i == 0 || text[i-1] != '\\' {
				quoted = !quoted
			}
		case '(', '[', '{':
			if !quoted {
				depth++
			}
		case ')', ']', '}':
			if !quoted {
				depth--
			}
		case ',':
			if depth == 0 && !quoted {
				ret = append(ret, text[begin:i])
				begin = i + 1
			}
		}
	}
	if begin < len(text) {
		ret = append(ret, text[begin:])
	}
	return ret
}
