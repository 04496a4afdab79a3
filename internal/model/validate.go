package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateVisaJobMap validates a generic payload map against the
// visa_job.schema.json file in schemaDir.
func ValidateVisaJobMap(m map[string]interface{}, schemaDir string) error {
	// Use an absolute canonical file:// path for the schema so loaders on all
	// platforms resolve file references correctly.
	abs, err := filepath.Abs(filepath.Join(schemaDir, "visa_job.schema.json"))
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
