package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "  plain reply\n", DecodeText("  plain reply\n"))
	assert.Equal(t, "```json\n{}\n```", DecodeText("```json\n{}\n```"))
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```\n[1,2]\n```", want: "[1,2]"},
		{name: "no fence", raw: `  {"a":1}  `, want: `{"a":1}`},
		{name: "leading fence only", raw: "```json {\"a\":1}", want: `{"a":1}`},
		{name: "surrounding whitespace", raw: "\n\n```json\n{}\n```\n", want: "{}"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.raw))
		})
	}
}

func TestDecodeStructured_FencedAndUnfencedAgree(t *testing.T) {
	payload := `{"q":"2+2?","options":["3","4"],"correct":"4"}`

	plain, err := DecodeStructured(payload, nil)
	require.NoError(t, err)

	fenced, err := DecodeStructured("```json\n"+payload+"\n```", nil)
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
	assert.Equal(t, map[string]any{
		"q":       "2+2?",
		"options": []any{"3", "4"},
		"correct": "4",
	}, plain)
}

func TestDecodeStructured_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "   ", wantErr: ErrEmptyResponse},
		{name: "only fences", raw: "```json\n```", wantErr: ErrEmptyResponse},
		{name: "prose", raw: "Sure! Here is your JSON", wantErr: ErrInvalidJSON},
		{name: "truncated", raw: `{"a":`, wantErr: ErrInvalidJSON},
		{name: "trailing text", raw: `{"a":1} thanks`, wantErr: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := DecodeStructured(tt.raw, nil)
			assert.Nil(t, value)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeStructured_Schema(t *testing.T) {
	schema := MustSchema(`{
		"type": "object",
		"required": ["question"],
		"properties": {"question": {"type": "string"}}
	}`)

	value, err := DecodeStructured(`{"question":"Tell me about yourself"}`, schema)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"question": "Tell me about yourself"}, value)

	_, err = DecodeStructured(`{"prompt":"wrong key"}`, schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Violations)

	_, err = DecodeStructured(`{"question":42}`, schema)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestNewSchema_Invalid(t *testing.T) {
	_, err := NewSchema(`{"type": 12}`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustSchema("not json") })
}
