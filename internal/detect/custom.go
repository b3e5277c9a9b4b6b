package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/constants"
)

// customCategorySchema validates caller-supplied detector definitions before
// they reach the regex compiler.
const customCategorySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "pattern"],
    "properties": {
      "name":       {"type": "string", "pattern": "^[A-Z][A-Z0-9_]*$"},
      "pattern":    {"type": "string", "minLength": 1},
      "confidence": {"type": "number", "minimum": 0, "maximum": 1}
    },
    "additionalProperties": false
  }
}`

var compiledCustomSchema = jsonschema.MustCompileString("custom_categories.json", customCategorySchema)

// CustomCategorySpec is one caller-defined detector definition.
type CustomCategorySpec struct {
	Name       string  `json:"name"`
	Pattern    string  `json:"pattern"`
	Confidence float64 `json:"confidence"`
}

// ParseCustomCategories validates a JSON definition document and compiles it
// into detectors. Category names are namespaced with the CUSTOM_ prefix so
// they can never shadow the built-in taxonomy.
func ParseCustomCategories(raw []byte) ([]Detector, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse custom categories: %w", err)
	}
	if err := compiledCustomSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid custom categories: %w", err)
	}

	var specs []CustomCategorySpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("decode custom categories: %w", err)
	}

	out := make([]Detector, 0, len(specs))
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", spec.Name, err)
		}
		conf := spec.Confidence
		if conf == 0 {
			conf = 0.5
		}
		name := spec.Name
		if !strings.HasPrefix(name, constants.CustomCategoryPrefix) {
			name = constants.CustomCategoryPrefix + name
		}
		out = append(out, &PatternDetector{
			category:   constants.PIICategory(name),
			re:         re,
			confidence: conf,
		})
	}
	return out, nil
}
