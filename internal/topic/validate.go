package topic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

const schemaURL = "schema://learnkit-topic.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles schemaDefinition once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go literals.
		defBytes, err := json.Marshal(schemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw JSON against the topic schema.
func validateDocument(raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile topic schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(doc); err != nil {
		return &ValidationError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// Validate runs the semantic checks the schema cannot express.
func Validate(t Topic) error {
	var errs []error

	if t.ID == "" {
		errs = append(errs, &ValidationError{Field: "topicId", Err: errors.New("must not be empty")})
	}
	if t.Title == "" {
		errs = append(errs, &ValidationError{Field: "title", Err: errors.New("must not be empty")})
	}
	if t.EstimatedMinutes < 1 || t.EstimatedMinutes > MaxMinutes {
		errs = append(errs, &ValidationError{
			Field: "estimatedMinutes",
			Err:   fmt.Errorf("must be between 1 and %d, got %d", MaxMinutes, t.EstimatedMinutes),
		})
	}
	if t.SchemaVersion != "" {
		if !semver.IsValid(t.SchemaVersion) || semver.Major(t.SchemaVersion) != SupportedSchemaMajor {
			errs = append(errs, &ValidationError{
				Field: "schemaVersion",
				Err:   fmt.Errorf("%w: %q (want %s.x.y)", ErrSchemaVersion, t.SchemaVersion, SupportedSchemaMajor),
			})
		}
	}

	if len(t.Questions) == 0 {
		errs = append(errs, &ValidationError{Field: "questions", Err: ErrNoQuestions})
	}
	seen := make(map[string]int, len(t.Questions))
	for i, q := range t.Questions {
		if prev, ok := seen[q.ID]; ok {
			errs = append(errs, &ValidationError{
				Field: fmt.Sprintf("questions[%d].id", i),
				Err:   fmt.Errorf("%w %q (first used at questions[%d])", ErrDuplicateQuestionID, q.ID, prev),
			})
			continue
		}
		seen[q.ID] = i
	}

	return errors.Join(errs...)
}
