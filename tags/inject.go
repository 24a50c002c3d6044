package tags

import (
	"strconv"
	"strings"
)

// Inject represents parsed inject tag values i.e. inject:"db,qualifier=primary,optional"
type Inject struct {
	Name      string
	Qualifier string
	Optional  bool
}

func (t *Tag) Inject() (*Inject, error) {
	ret := &Inject{}
	name, values := t.Values.Name()
	ret.Name = strings.TrimSpace(name)
	err := values.MatchPairs(func(key string, value string) error {
		switch strings.ToLower(key) {
		case "name":
			ret.Name = strings.TrimSpace(value)
		case "qualifier":
			ret.Qualifier = strings.TrimSpace(value)
		case "optional":
			if value == "" {
				ret.Optional = true
				return nil
			}
			optional, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			ret.Optional = optional
		}
		return nil
	})
	return ret, err
}
