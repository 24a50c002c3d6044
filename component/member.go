package component

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"github.com/viant/wirely/component/decl"
	"github.com/viant/wirely/tags"
)

type (
	//Member represents a registered construction member, a constructor
	//func or a factory method expression
	Member struct {
		Name         string
		value        reflect.Value
		fnType       reflect.Type
		declaration  *decl.Declaration
		signature    string
		method       bool
		holder       interface{}
		holderField  string
		tagList      []*tags.Tag
		declaredTags []*tags.Tag
	}

	//MemberOption customizes a member
	MemberOption func(m *Member)
)

// WithSignature attaches a constructor signature declaration i.e. NewBox(size int) *Box
func WithSignature(signature string) MemberOption {
	return func(m *Member) {
		m.signature = signature
	}
}

// WithDeclaration attaches an already parsed signature declaration
func WithDeclaration(declaration *decl.Declaration) MemberOption {
	return func(m *Member) {
		m.declaration = declaration
	}
}

// WithMethod marks the member as a factory method expression with a leading receiver
func WithMethod() MemberOption {
	return func(m *Member) {
		m.method = true
	}
}

// WithMemberTags attaches member level metadata tags
func WithMemberTags(tagList ...*tags.Tag) MemberOption {
	return func(m *Member) {
		m.tagList = tagList
	}
}

// WithDeclaredTags attaches the declared only tag view, it defaults to the
// member tags
func WithDeclaredTags(tagList ...*tags.Tag) MemberOption {
	return func(m *Member) {
		m.declaredTags = tagList
	}
}

// WithRestrictedAccess sources the member func from an unexported holder field
func WithRestrictedAccess(holder interface{}, field string) MemberOption {
	return func(m *Member) {
		m.holder = holder
		m.holderField = field
	}
}

func NewMember(name string, fn interface{}, opts ...MemberOption) (*Member, error) {
	ret := &Member{Name: name}
	if fn != nil {
		ret.value = reflect.ValueOf(fn)
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.signature != "" && ret.declaration == nil {
		declaration, err := decl.Parse(ret.signature)
		if err != nil {
			return nil, fmt.Errorf("invalid signature of member %v, %w", name, err)
		}
		ret.declaration = declaration
	}
	fnType, err := ret.funcType()
	if err != nil {
		return nil, err
	}
	ret.fnType = fnType
	return ret, nil
}

func (m *Member) funcType() (reflect.Type, error) {
	if m.value.IsValid() {
		if m.value.Kind() != reflect.Func {
			return nil, fmt.Errorf("member %v was not a func, but %v", m.Name, m.value.Kind())
		}
		return m.value.Type(), nil
	}
	if m.holder != nil {
		holderType := reflect.TypeOf(m.holder)
		if holderType.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("member %v: holder was not a pointer, but %v", m.Name, holderType.Kind())
		}
		holderType = holderType.Elem()
		field, ok := holderType.FieldByName(m.holderField)
		if !ok {
			return nil, fmt.Errorf("member %v: unknown holder field %v on %v", m.Name, m.holderField, holderType.String())
		}
		if field.Type.Kind() != reflect.Func {
			return nil, fmt.Errorf("member %v: holder field %v was not a func", m.Name, m.holderField)
		}
		return field.Type, nil
	}
	return nil, fmt.Errorf("member %v had no func value", m.Name)
}

// AttachSignature returns a member with the supplied signature declaration
// attached, an already attached declaration wins
func (m *Member) AttachSignature(signature string) (*Member, error) {
	if signature == "" || m.declaration != nil {
		return m, nil
	}
	declaration, err := decl.Parse(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature of member %v, %w", m.Name, err)
	}
	clone := *m
	clone.signature = signature
	clone.declaration = declaration
	return &clone, nil
}

// Type returns the member func type
func (m *Member) Type() reflect.Type {
	return m.fnType
}

func (m *Member) Declaration() *decl.Declaration {
	return m.declaration
}

// Tags returns member level metadata tags
func (m *Member) Tags() []*tags.Tag {
	return m.tagList
}

// DeclaredTags returns the declared only tag view
func (m *Member) DeclaredTags() []*tags.Tag {
	if len(m.declaredTags) == 0 {
		return m.tagList
	}
	return m.declaredTags
}

func (m *Member) IsMethod() bool {
	return m.method
}

// Nesting returns the count of leading synthetic parameters, 1 for a
// factory method expression receiver
func (m *Member) Nesting() int {
	if m.method {
		return 1
	}
	return 0
}

func (m *Member) NumIn() int {
	return m.fnType.NumIn()
}

func (m *Member) In(i int) reflect.Type {
	return m.fnType.In(i)
}

// Equals compares member identity, the underlying func pointer and name
func (m *Member) Equals(other *Member) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	return m.Name == other.Name && m.pointer() == other.pointer()
}

func (m *Member) Hash() int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(m.Name))
	_, _ = hash.Write([]byte(fmt.Sprintf("%x", m.pointer())))
	return int(hash.Sum32())
}

func (m *Member) pointer() uintptr {
	if m.value.IsValid() {
		return m.value.Pointer()
	}
	return reflect.ValueOf(m.holder).Pointer()
}

func (m *Member) String() string {
	return m.Name + " " + m.fnType.String()
}
