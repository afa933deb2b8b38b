package bracken

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables is a user-supplied set of extra static candidates, loaded from
// YAML. The file holds two lists mirroring the bundled data tables:
//
//	builtins:
//	  - name: wp_enqueue_script
//	    kind: function
//	snippets:
//	  - name: getter
//	    kind: snippet
//	    detail: accessor
//	    template: "public function get${1:Name}() {\n\treturn \\$this->${2:field};\n}"
type Tables struct {
	Builtins []Candidate `yaml:"builtins"`
	Snippets []Candidate `yaml:"snippets"`
}

// LoadTables decodes a Tables document from r.
func LoadTables(r io.Reader) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("bracken: decode tables: %w", err)
	}
	for i, c := range t.Builtins {
		if c.Name == "" {
			return nil, fmt.Errorf("bracken: builtins[%d] has no name", i)
		}
	}
	for i, c := range t.Snippets {
		if c.Name == "" {
			return nil, fmt.Errorf("bracken: snippets[%d] has no name", i)
		}
	}
	return &t, nil
}

// LoadTablesFile reads and decodes a Tables document from path.
func LoadTablesFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bracken: open tables: %w", err)
	}
	defer f.Close()
	return LoadTables(f)
}

// Extend returns a copy of lang with the tables' candidates appended to its
// builtin and snippet lists. The original language definition is not
// modified, so bundled definitions stay shareable.
func (t *Tables) Extend(lang *Language) *Language {
	if t == nil || (len(t.Builtins) == 0 && len(t.Snippets) == 0) {
		return lang
	}
	ext := *lang
	ext.Builtins = append(append([]Candidate{}, lang.Builtins...), t.Builtins...)
	ext.Snippets = append(append([]Candidate{}, lang.Snippets...), t.Snippets...)
	return &ext
}
