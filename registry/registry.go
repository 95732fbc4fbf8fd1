// Package registry holds the mapping of environment keys to environments
// and persists it as JSON in the repository.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jeffrom/tagenv/model"
)

var ErrEmptyRegistry = errors.New("registry: no environments")

// Registry is an insertion-ordered mapping of key to environment.
type Registry struct {
	keys []string
	envs map[string]*model.Environment
}

func New() *Registry {
	return &Registry{envs: make(map[string]*model.Environment)}
}

// Default returns the built-in environments used when no configuration is
// persisted.
func Default() *Registry {
	r := New()
	for _, env := range []*model.Environment{
		{Key: "prod", Label: "Production", Prefix: "v"},
		{Key: "sandbox", Label: "Sandbox", Prefix: "x"},
		{Key: "preprod", Label: "Preprod", Prefix: "preprod"},
		{Key: "staging", Label: "Staging", Prefix: "s"},
		{Key: "dev", Label: "Dev", Prefix: "d"},
	} {
		r.Add(env)
	}
	return r
}

// Add inserts env under env.Key. An existing entry with the same key is
// replaced in place and Add returns true.
func (r *Registry) Add(env *model.Environment) bool {
	e := *env
	_, exists := r.envs[e.Key]
	if !exists {
		r.keys = append(r.keys, e.Key)
	}
	r.envs[e.Key] = &e
	return exists
}

func (r *Registry) Get(key string) (*model.Environment, bool) {
	env, ok := r.envs[key]
	return env, ok
}

func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Registry) Environments() []*model.Environment {
	envs := make([]*model.Environment, len(r.keys))
	for i, key := range r.keys {
		envs[i] = r.envs[key]
	}
	return envs
}

func (r *Registry) Len() int { return len(r.keys) }

func (r *Registry) Validate() error {
	if r.Len() == 0 {
		return ErrEmptyRegistry
	}
	for _, env := range r.Environments() {
		if err := env.Validate(); err != nil {
			return fmt.Errorf("registry: %w", err)
		}
	}
	return nil
}

// Overlap is a pair of environments where one prefix starts the other, so
// the shorter prefix's tag glob may list the longer prefix's tags.
type Overlap struct {
	Short, Long *model.Environment
}

func (o Overlap) String() string {
	return fmt.Sprintf("prefix %q (%s) is a prefix of %q (%s)", o.Short.Prefix, o.Short.Key, o.Long.Prefix, o.Long.Key)
}

func (r *Registry) Overlaps() []Overlap {
	var res []Overlap
	envs := r.Environments()
	for _, a := range envs {
		for _, b := range envs {
			if a.Key == b.Key || (a.Prefix == b.Prefix && a.Key > b.Key) {
				continue
			}
			if strings.HasPrefix(b.Prefix, a.Prefix) {
				res = append(res, Overlap{Short: a, Long: b})
			}
		}
	}
	return res
}

func (r *Registry) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString("{")
	for i, key := range r.keys {
		if i > 0 {
			b.WriteString(",")
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.envs[key])
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteString(":")
		b.Write(vb)
	}
	b.WriteString("}")
	return b.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the document's key order.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("registry: expected object, got %v", tok)
	}

	res := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("registry: expected key, got %v", tok)
		}
		env := &model.Environment{}
		if err := dec.Decode(env); err != nil {
			return fmt.Errorf("registry: environment %q: %w", key, err)
		}
		env.Key = key
		res.Add(env)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = *res
	return nil
}
