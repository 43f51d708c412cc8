package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cartforge/cartlint/pkg/logger"
)

var schemaMessagePrinter = message.NewPrinter(language.English)

var schemaLog = logger.New("parser:schema")

// frontmatterSchema constrains the structural shape of the header block:
// field types only. Field presence, enum membership, and cross-references
// against the stack registry are checked by the linter rules, which produce
// one finding per violated rule.
const frontmatterSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "cartridge": {"type": "boolean"},
    "name": {"type": "string"},
    "tier": {"type": "string"},
    "stack": {"type": "string"},
    "version": {"type": ["string", "number"]},
    "owner": {"type": "string"},
    "status": {"type": "string"}
  }
}`

var compiledFrontmatterSchema = mustCompileSchema("cartridge-frontmatter.json", frontmatterSchema)

func mustCompileSchema(name, source string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema %s: %v", name, err))
	}
	return schema
}

// ValidateFrontmatterShape checks the parsed header map against the
// structural schema and returns one message per violation. An empty slice
// means the shape is valid.
func ValidateFrontmatterShape(frontmatter map[string]any) []string {
	schemaLog.Printf("Validating frontmatter shape: fields=%d", len(frontmatter))

	// Round-trip through JSON so the instance uses the value types the
	// schema validator expects, regardless of what the YAML decoder chose.
	raw, err := json.Marshal(frontmatter)
	if err != nil {
		return []string{fmt.Sprintf("front matter is not schema-checkable: %v", err)}
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []string{fmt.Sprintf("front matter is not schema-checkable: %v", err)}
	}

	err = compiledFrontmatterSchema.Validate(instance)
	if err == nil {
		return nil
	}

	var messages []string
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		messages = flattenValidationError(verr)
	} else {
		messages = []string{err.Error()}
	}
	schemaLog.Printf("Frontmatter shape violations: %d", len(messages))
	return messages
}

// flattenValidationError collects leaf causes so each structural problem
// becomes its own message.
func flattenValidationError(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		field := strings.Join(verr.InstanceLocation, ".")
		msg := verr.ErrorKind.LocalizedString(schemaMessagePrinter)
		if field == "" {
			return []string{fmt.Sprintf("front matter: %s", msg)}
		}
		return []string{fmt.Sprintf("front matter field '%s': %s", field, msg)}
	}
	var messages []string
	for _, cause := range verr.Causes {
		messages = append(messages, flattenValidationError(cause)...)
	}
	return messages
}
