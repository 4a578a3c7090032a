package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFieldPersonalInfo(t *testing.T) {
	assert.NoError(t, ValidateField("personalInfo",
		[]byte(`{"firstName":"Ana","lastName":"Silva","email":"ana@x.com","phone":"+234 800"}`)))

	tests := []struct {
		name string
		raw  string
	}{
		{"missing lastName", `{"firstName":"Ana","email":"ana@x.com"}`},
		{"empty firstName", `{"firstName":"","lastName":"Silva","email":"ana@x.com"}`},
		{"bad email", `{"firstName":"Ana","lastName":"Silva","email":"not-an-email"}`},
		{"not an object", `["Ana"]`},
		{"malformed json", `{"firstName":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateField("personalInfo", []byte(tt.raw)))
		})
	}
}

func TestValidateFieldConsent(t *testing.T) {
	assert.NoError(t, ValidateField("consent",
		[]byte(`{"dataProcessing":true,"accuracyDeclaration":true}`)))
	// O schema exige booleanos presentes; serem true é regra de negócio, não do schema
	assert.NoError(t, ValidateField("consent",
		[]byte(`{"dataProcessing":false,"accuracyDeclaration":true}`)))

	assert.Error(t, ValidateField("consent", []byte(`{"dataProcessing":true}`)))
	assert.Error(t, ValidateField("consent",
		[]byte(`{"dataProcessing":"yes","accuracyDeclaration":true}`)))
}

func TestValidateFieldLooseCollections(t *testing.T) {
	// education/workExperience/skills aceitam array ou objeto
	for _, field := range []string{"education", "workExperience", "skills"} {
		assert.NoError(t, ValidateField(field, []byte(`[]`)), field)
		assert.NoError(t, ValidateField(field, []byte(`[{"anything":1}]`)), field)
		assert.NoError(t, ValidateField(field, []byte(`{"k":"v"}`)), field)
		assert.Error(t, ValidateField(field, []byte(`"scalar"`)), field)
	}
}

func TestValidateFieldUnknownPassesThrough(t *testing.T) {
	assert.NoError(t, ValidateField("somethingElse", []byte(`"anything"`)))
}
