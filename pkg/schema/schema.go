package schema

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Document is a declarative list of rules.
type Document struct {
	Rules []Definition `yaml:"rules" json:"rules"`
}

// Definition describes one rule. Rule selects the family; fields that do not apply to it
// are ignored.
type Definition struct {
	Rule string `yaml:"rule" json:"rule"`
	Path Path   `yaml:"path" json:"path"`

	AllowNil    bool `yaml:"allow_nil,omitempty" json:"allow_nil,omitempty"`
	AllowBlank  bool `yaml:"allow_blank,omitempty" json:"allow_blank,omitempty"`
	OnlyInteger bool `yaml:"only_integer,omitempty" json:"only_integer,omitempty"`
	Odd         bool `yaml:"odd,omitempty" json:"odd,omitempty"`
	Even        bool `yaml:"even,omitempty" json:"even,omitempty"`

	GT      *float64 `yaml:"gt,omitempty" json:"gt,omitempty"`
	GTE     *float64 `yaml:"gte,omitempty" json:"gte,omitempty"`
	LT      *float64 `yaml:"lt,omitempty" json:"lt,omitempty"`
	LTE     *float64 `yaml:"lte,omitempty" json:"lte,omitempty"`
	EqualTo *float64 `yaml:"equal_to,omitempty" json:"equal_to,omitempty"`

	Accept []any `yaml:"accept,omitempty" json:"accept,omitempty"`
	In     []any `yaml:"in,omitempty" json:"in,omitempty"`

	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Preset string `yaml:"preset,omitempty" json:"preset,omitempty"`

	Is     *int  `yaml:"is,omitempty" json:"is,omitempty"`
	Within []int `yaml:"within,omitempty" json:"within,omitempty"`

	Message      string `yaml:"message,omitempty" json:"message,omitempty"`
	BlankMessage string `yaml:"blank_message,omitempty" json:"blank_message,omitempty"`
}

// Path is an attribute path written either as a single key or as a list of keys.
type Path []string

// UnmarshalYAML accepts `path: email` and `path: [address, street]`.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Path{node.Value}
		return nil
	case yaml.SequenceNode:
		var keys []string
		if err := node.Decode(&keys); err != nil {
			return errors.Join(ErrInvalidPath, err)
		}
		*p = keys
		return nil
	}
	return ErrInvalidPath
}

// UnmarshalJSON accepts `"path": "email"` and `"path": ["address", "street"]`.
func (p *Path) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*p = Path{key}
		return nil
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return errors.Join(ErrInvalidPath, err)
	}
	*p = keys
	return nil
}
