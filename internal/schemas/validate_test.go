package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer"}
	},
	"additionalProperties": false
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "screening", "count": 2}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 2}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "x", "count": "two"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_UnknownProperty(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "x", "extra": true}`)
	require.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{ invalid json }`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed input should surface as SchemaLoadError")
}

func TestValidateJSON_ValidFile(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{"name": "ok"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidFile(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)
	jsonPath := writeTempFile(t, "doc.json", `{"count": 1}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTempFile(t, "doc.json", `{"name": "ok"}`)

	err := ValidateJSON("/nonexistent/schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentDocument(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, "/nonexistent/doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Format(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "skill_questions", Message: "is required"},
		{Field: "(root)", Message: "additional properties not allowed"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. skill_questions: is required")
	assert.Contains(t, msg, "2. (root)")
}
