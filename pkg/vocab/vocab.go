// Package vocab provides the closed facet vocabularies the browse surface
// validates against: difficulty levels, time buckets, the fixed tag set, and
// the defined sort modes. The vocabulary ships embedded in the binary.
package vocab

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var vocabRawData []byte

// Option is one selectable facet value with its display label.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// vocabFile is the top-level structure of the embedded YAML.
type vocabFile struct {
	Difficulties []Option `yaml:"difficulties"`
	Times        []Option `yaml:"times"`
	Tags         []Option `yaml:"tags"`
	Sorts        []Option `yaml:"sorts"`
}

// Vocabulary provides lazy-loaded access to the embedded facet vocabulary.
type Vocabulary struct {
	once sync.Once
	file vocabFile
	err  error
}

// New creates a Vocabulary that parses the embedded YAML on first access.
func New() *Vocabulary {
	return &Vocabulary{}
}

// load parses the embedded YAML vocabulary data.
func (v *Vocabulary) load() {
	if err := yaml.Unmarshal(vocabRawData, &v.file); err != nil {
		v.err = fmt.Errorf("vocab: parse yaml: %w", err)
	}
}

// Difficulties returns the selectable difficulty facet options.
func (v *Vocabulary) Difficulties() ([]Option, error) {
	v.once.Do(v.load)
	if v.err != nil {
		return nil, v.err
	}
	return copyOptions(v.file.Difficulties), nil
}

// Times returns the selectable time-bucket facet options.
func (v *Vocabulary) Times() ([]Option, error) {
	v.once.Do(v.load)
	if v.err != nil {
		return nil, v.err
	}
	return copyOptions(v.file.Times), nil
}

// Tags returns the fixed tag vocabulary.
func (v *Vocabulary) Tags() ([]Option, error) {
	v.once.Do(v.load)
	if v.err != nil {
		return nil, v.err
	}
	return copyOptions(v.file.Tags), nil
}

// Sorts returns the defined sort modes.
func (v *Vocabulary) Sorts() ([]Option, error) {
	v.once.Do(v.load)
	if v.err != nil {
		return nil, v.err
	}
	return copyOptions(v.file.Sorts), nil
}

// DifficultyValues returns the valid difficulty facet values.
func (v *Vocabulary) DifficultyValues() []string {
	return values(v.Difficulties)
}

// TimeValues returns the valid time-bucket facet values.
func (v *Vocabulary) TimeValues() []string {
	return values(v.Times)
}

// TagValues returns the valid tag facet values.
func (v *Vocabulary) TagValues() []string {
	return values(v.Tags)
}

// values flattens an option accessor into its value strings. The embedded
// vocabulary only fails to parse if the build itself is broken, so accessor
// errors collapse to an empty set here.
func values(get func() ([]Option, error)) []string {
	opts, err := get()
	if err != nil {
		return nil
	}
	vals := make([]string, len(opts))
	for i, o := range opts {
		vals[i] = o.Value
	}
	return vals
}

func copyOptions(opts []Option) []Option {
	cp := make([]Option, len(opts))
	copy(cp, opts)
	return cp
}
