package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLeadSearchPrompt(t *testing.T) {
	prompt, err := render(leadSearchTmpl, map[string]any{
		"industry": "dental clinics",
		"location": "Cork",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Industry: dental clinics")
	assert.Contains(t, prompt, "Location: Cork")
	assert.Contains(t, prompt, "at least 20")
	assert.False(t, strings.Contains(prompt, "{{"), "unresolved placeholders left in prompt")
}

func TestRenderOutreachPrompt(t *testing.T) {
	prompt, err := render(outreachTmpl, map[string]any{
		"companyName": "Quick Cuts",
		"summary":     "Barbershop.",
		"painPoints":  "No booking system.",
		"techNeeds":   "Online booking.",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Company Name: Quick Cuts")
	assert.Contains(t, prompt, "Identified Pain Points: No booking system.")
	assert.False(t, strings.Contains(prompt, "{{"))
}

func TestRenderBlogPrompt(t *testing.T) {
	prompt, err := render(blogTmpl, map[string]any{"topic": "cloud migration"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Topic: cloud migration")
}
