package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_ValidProfile(t *testing.T) {
	schemaPath := ResolveSchemaPath(ProfileSchema)
	require.NotEmpty(t, schemaPath, "profile schema should be resolvable from the test directory")

	document := []byte(`{
		"name": "Jane",
		"surname": "Doe",
		"email": "jane@example.com",
		"current_role": {
			"title": "Engineer",
			"organisation": "Acme",
			"start": "2020-06-01T00:00:00Z"
		},
		"languages": [{"name": "English", "level": "Native or bilingual"}]
	}`)

	assert.NoError(t, ValidateBytes(schemaPath, document))
}

func TestValidateBytes_UnknownFieldRejected(t *testing.T) {
	schemaPath := ResolveSchemaPath(ProfileSchema)
	require.NotEmpty(t, schemaPath)

	document := []byte(`{"name": "Jane", "nickname": "JD"}`)

	err := ValidateBytes(schemaPath, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateBytes_RoleMissingOrganisation(t *testing.T) {
	schemaPath := ResolveSchemaPath(ProfileSchema)
	require.NotEmpty(t, schemaPath)

	document := []byte(`{"current_role": {"title": "Engineer"}}`)

	err := ValidateBytes(schemaPath, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateBytes_NonExistentSchema(t *testing.T) {
	err := ValidateBytes("testdata/nonexistent_schema.json", []byte(`{}`))
	require.Error(t, err)

	schemaErr, ok := err.(*SchemaLoadError)
	require.True(t, ok, "error should be SchemaLoadError type")
	assert.Contains(t, schemaErr.Error(), "not found")
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	schemaPath := ResolveSchemaPath(ProfileSchema)
	require.NotEmpty(t, schemaPath)

	err := ValidateBytes(schemaPath, []byte("{ not json }"))
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	assert.NoError(t, ValidateJSONString(schemaContent, jsonContent))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such_schema.json"))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "current_role", Message: "must be an object"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "current_role")
}
