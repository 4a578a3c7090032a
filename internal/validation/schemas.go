package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Cada campo do formulário de candidatura chega como uma string JSON separada
// e é validado individualmente contra seu próprio schema — não existe um
// schema único para o formulário inteiro.
var fieldSchemas = map[string]string{
	"personalInfo": `{
		"type": "object",
		"required": ["firstName", "lastName", "email"],
		"properties": {
			"firstName": {"type": "string", "minLength": 1},
			"lastName":  {"type": "string", "minLength": 1},
			"email":     {"type": "string", "pattern": "^[^@]+@[^@]+\\.[^@]+$"},
			"phone":     {"type": "string"}
		}
	}`,
	"education": `{
		"type": ["array", "object"]
	}`,
	"workExperience": `{
		"type": ["array", "object"]
	}`,
	"skills": `{
		"type": ["array", "object"]
	}`,
	"customAnswers": `{
		"type": "object"
	}`,
	"consent": `{
		"type": "object",
		"required": ["dataProcessing", "accuracyDeclaration"],
		"properties": {
			"dataProcessing":      {"type": "boolean"},
			"accuracyDeclaration": {"type": "boolean"}
		}
	}`,
}

var compiled map[string]*gojsonschema.Schema

func init() {
	compiled = make(map[string]*gojsonschema.Schema, len(fieldSchemas))
	for field, raw := range fieldSchemas {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("validation: schema inválido para %s: %v", field, err))
		}
		compiled[field] = schema
	}
}

// ValidateField valida o JSON bruto de um campo da candidatura.
// Retorna erro com mensagem específica do campo em caso de falha.
func ValidateField(field string, raw []byte) error {
	schema, ok := compiled[field]
	if !ok {
		return nil // Campos sem schema passam direto
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("Invalid JSON format for field %s.", field)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("Invalid %s: %s", field, strings.Join(msgs, "; "))
	}
	return nil
}
