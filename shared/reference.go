package shared

// Reference represents a named reference to another resource element
type Reference struct {
	Ref string `json:",omitempty" yaml:"ref,omitempty"`
}
