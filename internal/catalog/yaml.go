package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// yamlEntry mirrors one document entry of a catalog YAML file:
//
//	- namespace: builtin
//	  name: iadd
//	  inputs: [a, b]
//	  outputs: [c]
//	  variadic: false
//	  scheme: {kind: GRAPH, type: "(a: INTEGER, b: INTEGER) -> (c: INTEGER)"}
//
// scheme is deliberately typed as `any`: spec.md §4.2 requires the
// catalog to treat it as opaque, so LoadYAML only needs to carry
// whatever the document contains through to FunctionEntry.Scheme as
// json.RawMessage, never to parse it.
type yamlEntry struct {
	Namespace string      `yaml:"namespace"`
	Name      string      `yaml:"name"`
	Inputs    []string    `yaml:"inputs"`
	Outputs   []string    `yaml:"outputs"`
	Variadic  bool        `yaml:"variadic"`
	Scheme    interface{} `yaml:"scheme"`
}

type yamlDocument struct {
	Functions []yamlEntry `yaml:"functions"`
}

// LoadYAML reads a catalog definition from r, letting a deployment
// version its operation surface as a checked-in file rather than Go
// source — the way a real system's builtin set tends to outlive any
// one compiler binary.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}

	c := New()
	for _, e := range doc.Functions {
		if e.Namespace == "" || e.Name == "" {
			return nil, fmt.Errorf("catalog: entry missing namespace or name: %+v", e)
		}
		var rawScheme json.RawMessage
		if e.Scheme != nil {
			b, err := json.Marshal(e.Scheme)
			if err != nil {
				return nil, fmt.Errorf("catalog: encode scheme for %s/%s: %w", e.Namespace, e.Name, err)
			}
			rawScheme = b
		}
		c.Add(FunctionEntry{
			Namespace: e.Namespace,
			Name:      e.Name,
			Inputs:    e.Inputs,
			Outputs:   e.Outputs,
			Variadic:  e.Variadic,
			Scheme:    rawScheme,
		})
	}
	return c, nil
}
