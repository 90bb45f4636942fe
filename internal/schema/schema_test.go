package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

var testDef = &Definition{
	Name: "TestInput",
	Fields: []Field{
		{Name: "industry", Type: TypeString, Required: true, MinLen: 3},
		{Name: "location", Type: TypeString, Required: true, MinLen: 2},
		{Name: "email", Type: TypeString, Email: true},
		{Name: "rating", Type: TypeNumber, Min: Num(1), Max: Num(5)},
	},
}

func TestValidateAccepts(t *testing.T) {
	in := map[string]any{
		"industry": "restaurants",
		"location": "Dublin",
		"email":    "owner@example.com",
		"rating":   4.5,
	}
	out, err := testDef.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestValidateOptionalFieldsMayBeAbsent(t *testing.T) {
	_, err := testDef.Validate(map[string]any{
		"industry": "restaurants",
		"location": "Dublin",
	})
	assert.NoError(t, err)
}

func TestValidateMinLen(t *testing.T) {
	_, err := testDef.Validate(map[string]any{
		"industry": "ab",
		"location": "Dublin",
	})
	require.Error(t, err)
	violations := err.(Violations)
	require.Len(t, violations, 1)
	assert.Equal(t, "industry", violations[0].Field)
}

func TestValidateMinLenCountsRunes(t *testing.T) {
	// 3 characters, 6 bytes
	_, err := testDef.Validate(map[string]any{
		"industry": "кпд",
		"location": "Dublin",
	})
	assert.NoError(t, err)

	_, err = testDef.Validate(map[string]any{
		"industry": "кп",
		"location": "Dublin",
	})
	require.Error(t, err)
	assert.Equal(t, "industry", err.(Violations)[0].Field)
}

func TestValidateMissingRequired(t *testing.T) {
	_, err := testDef.Validate(map[string]any{"industry": "restaurants"})
	require.Error(t, err)
	violations := err.(Violations)
	require.Len(t, violations, 1)
	assert.Equal(t, "location", violations[0].Field)
	assert.Equal(t, "is required", violations[0].Message)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	_, err := testDef.Validate(map[string]any{
		"industry": "ab",
		"email":    "not-an-email",
		"rating":   9.0,
	})
	require.Error(t, err)
	violations := err.(Violations)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"industry", "location", "email", "rating"}, fields)
}

func TestValidateEmail(t *testing.T) {
	_, err := testDef.Validate(map[string]any{
		"industry": "restaurants",
		"location": "Dublin",
		"email":    "nope",
	})
	require.Error(t, err)
	assert.Equal(t, "email", err.(Violations)[0].Field)
}

func TestValidateNumberRange(t *testing.T) {
	for _, bad := range []float64{0.5, 5.5} {
		_, err := testDef.Validate(map[string]any{
			"industry": "restaurants",
			"location": "Dublin",
			"rating":   bad,
		})
		require.Error(t, err, "rating %v should be rejected", bad)
	}
	_, err := testDef.Validate(map[string]any{
		"industry": "restaurants",
		"location": "Dublin",
		"rating":   3, // ints from Go-built maps are fine too
	})
	assert.NoError(t, err)
}

func TestValidateWrongType(t *testing.T) {
	_, err := testDef.Validate(map[string]any{
		"industry": 42,
		"location": "Dublin",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestValidateArrayOfObjects(t *testing.T) {
	def := &Definition{
		Name: "Out",
		Fields: []Field{
			{Name: "leads", Type: TypeArray, Required: true, Items: &Definition{
				Name: "Lead",
				Fields: []Field{
					{Name: "companyName", Type: TypeString, Required: true},
				},
			}},
		},
	}

	_, err := def.Validate(map[string]any{
		"leads": []any{
			map[string]any{"companyName": "Acme"},
			map[string]any{},
		},
	})
	require.Error(t, err)
	violations := err.(Violations)
	require.Len(t, violations, 1)
	assert.Equal(t, "leads[1].companyName", violations[0].Field)
}

func TestGenAISchema(t *testing.T) {
	s := testDef.GenAISchema()
	require.NotNil(t, s)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"industry", "location"}, s.Required)
	require.Contains(t, s.Properties, "rating")
	assert.Equal(t, genai.TypeNumber, s.Properties["rating"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["email"].Type)
}

func TestGenAISchemaArrayItems(t *testing.T) {
	def := &Definition{
		Name: "Out",
		Fields: []Field{
			{Name: "leads", Type: TypeArray, Required: true, Description: "the leads", Items: &Definition{
				Name: "Lead",
				Fields: []Field{
					{Name: "companyName", Type: TypeString, Required: true},
					{Name: "notes", Type: TypeString},
				},
			}},
		},
	}
	s := def.GenAISchema()
	leads := s.Properties["leads"]
	require.NotNil(t, leads)
	assert.Equal(t, genai.TypeArray, leads.Type)
	assert.Equal(t, "the leads", leads.Description)
	require.NotNil(t, leads.Items)
	assert.Equal(t, []string{"companyName"}, leads.Items.Required)
	assert.Contains(t, leads.Items.Properties, "notes")
}

func TestViolationsError(t *testing.T) {
	err := Violations{{Field: "message", Message: "must be at least 10 characters"}}
	assert.Contains(t, err.Error(), "message: must be at least 10 characters")
}
