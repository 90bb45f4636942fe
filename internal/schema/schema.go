// Package schema holds the declarative input/output contracts used by the
// generation flows. Each contract is a Definition built once at startup and
// used both to validate values and to constrain model output.
package schema

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"
)

type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Field describes one named field of a contract.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	MinLen      int // strings only
	Email       bool
	Min, Max    *float64 // numbers only
	Description string
	Items       *Definition // element shape for arrays of objects
	Object      *Definition // shape for nested objects
}

// Definition is a named set of fields.
type Definition struct {
	Name   string
	Fields []Field
}

// Violation is a single per-field constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations implements error so a failed validation can travel up the
// call chain like any other failure.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, viol := range v {
		parts = append(parts, viol.Field+": "+viol.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Num is a convenience for building Min/Max constraints.
func Num(x float64) *float64 { return &x }

// Validate checks m against the definition. It returns m untouched on
// success, or the full set of per-field violations.
func (d *Definition) Validate(m map[string]any) (map[string]any, error) {
	var violations Violations
	for _, f := range d.Fields {
		raw, present := m[f.Name]
		if !present || raw == nil {
			if f.Required {
				violations = append(violations, Violation{f.Name, "is required"})
			}
			continue
		}
		violations = append(violations, f.check(f.Name, raw)...)
	}
	if len(violations) > 0 {
		return nil, violations
	}
	return m, nil
}

func (f Field) check(path string, raw any) Violations {
	switch f.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return Violations{{path, "must be a string"}}
		}
		if f.Required && strings.TrimSpace(s) == "" {
			return Violations{{path, "is required"}}
		}
		if f.MinLen > 0 && utf8.RuneCountInString(s) < f.MinLen {
			return Violations{{path, fmt.Sprintf("must be at least %d characters", f.MinLen)}}
		}
		if f.Email && s != "" {
			if _, err := mail.ParseAddress(s); err != nil {
				return Violations{{path, "must be a valid email"}}
			}
		}
	case TypeNumber, TypeInteger:
		n, ok := toFloat(raw)
		if !ok {
			return Violations{{path, "must be a number"}}
		}
		if f.Min != nil && n < *f.Min {
			return Violations{{path, fmt.Sprintf("must be >= %g", *f.Min)}}
		}
		if f.Max != nil && n > *f.Max {
			return Violations{{path, fmt.Sprintf("must be <= %g", *f.Max)}}
		}
	case TypeArray:
		items, ok := raw.([]any)
		if !ok {
			return Violations{{path, "must be an array"}}
		}
		var violations Violations
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				violations = append(violations, Violation{fmt.Sprintf("%s[%d]", path, i), "must be an object"})
				continue
			}
			if f.Items == nil {
				continue
			}
			if _, err := f.Items.Validate(obj); err != nil {
				for _, v := range err.(Violations) {
					violations = append(violations, Violation{fmt.Sprintf("%s[%d].%s", path, i, v.Field), v.Message})
				}
			}
		}
		return violations
	case TypeObject:
		obj, ok := raw.(map[string]any)
		if !ok {
			return Violations{{path, "must be an object"}}
		}
		if f.Object == nil {
			return nil
		}
		if _, err := f.Object.Validate(obj); err != nil {
			var violations Violations
			for _, v := range err.(Violations) {
				violations = append(violations, Violation{path + "." + v.Field, v.Message})
			}
			return violations
		}
	}
	return nil
}

func toFloat(raw any) (float64, bool) {
	switch t := raw.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

// GenAISchema renders the definition as a Gemini response schema, so the
// backend returns JSON already conformant to the contract.
func (d *Definition) GenAISchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(d.Fields))
	var required []string
	for _, f := range d.Fields {
		props[f.Name] = f.genAISchema()
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func (f Field) genAISchema() *genai.Schema {
	s := &genai.Schema{Description: f.Description}
	switch f.Type {
	case TypeString:
		s.Type = genai.TypeString
	case TypeNumber:
		s.Type = genai.TypeNumber
	case TypeInteger:
		s.Type = genai.TypeInteger
	case TypeArray:
		s.Type = genai.TypeArray
		if f.Items != nil {
			s.Items = f.Items.GenAISchema()
		}
	case TypeObject:
		s.Type = genai.TypeObject
		if f.Object != nil {
			nested := f.Object.GenAISchema()
			s.Properties = nested.Properties
			s.Required = nested.Required
		}
	}
	return s
}
