package ingestion

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldKind selects the coercion applied to a matched cell.
type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindDate   FieldKind = "date"
	KindText   FieldKind = "text"
)

// Field is one canonical column of an upload schema.
type Field struct {
	Name     string    `yaml:"name"`
	Kind     FieldKind `yaml:"kind"`
	Aliases  []string  `yaml:"aliases"`
	Required bool      `yaml:"required"`

	// OmitInvalid leaves the field absent when coercion fails instead of
	// defaulting it to zero. Downstream calculators skip absent fields.
	OmitInvalid bool `yaml:"omit_invalid"`
}

// Schema maps spreadsheet headers onto canonical field names for one upload
// type. Lookup keys are canonicalized, so callers never see header variants.
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`

	lookup map[string]*Field
}

//go:embed aliases.yaml
var aliasConfig []byte

var schemas = mustLoadSchemas(aliasConfig)

// DailySchema covers the single-row daily production upload.
func DailySchema() *Schema { return schemas["daily"] }

// SeriesSchema covers multi-row trend chart uploads keyed by date.
func SeriesSchema() *Schema { return schemas["trend_series"] }

// CustomerSchema covers per-customer monthly breakdown uploads.
func CustomerSchema() *Schema { return schemas["customer_trend"] }

func mustLoadSchemas(raw []byte) map[string]*Schema {
	var file struct {
		Schemas []*Schema `yaml:"schemas"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("ingestion: parse aliases.yaml: %v", err))
	}
	out := make(map[string]*Schema, len(file.Schemas))
	for _, s := range file.Schemas {
		s.lookup = make(map[string]*Field)
		for i := range s.Fields {
			f := &s.Fields[i]
			s.lookup[CanonicalKey(f.Name)] = f
			for _, a := range f.Aliases {
				s.lookup[CanonicalKey(a)] = f
			}
		}
		out[s.Name] = s
	}
	return out
}

// Resolve maps a raw spreadsheet header to its canonical field, if any.
func (s *Schema) Resolve(header string) (*Field, bool) {
	f, ok := s.lookup[CanonicalKey(header)]
	return f, ok
}

// Required returns the schema's required fields in declaration order.
func (s *Schema) RequiredFields() []*Field {
	var out []*Field
	for i := range s.Fields {
		if s.Fields[i].Required {
			out = append(out, &s.Fields[i])
		}
	}
	return out
}

// CanonicalKey normalizes a header for matching: lowercase, underscores as
// spaces, runs of whitespace collapsed, surrounding whitespace trimmed.
func CanonicalKey(header string) string {
	k := strings.ToLower(header)
	k = strings.ReplaceAll(k, "_", " ")
	k = strings.Join(strings.Fields(k), " ")
	return k
}
