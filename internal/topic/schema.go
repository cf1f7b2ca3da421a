package topic

// SupportedSchemaMajor is the topic file format major version this build reads.
const SupportedSchemaMajor = "v1"

// schemaDefinition is the JSON Schema every topic file must satisfy before
// it is decoded.
var schemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"topicId": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"estimatedMinutes": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": MaxMinutes,
		},
		"schemaVersion": map[string]any{
			"type": "string",
		},
		"learningContent": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"markdown": map[string]any{
					"type": "string",
				},
				"keyPoints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"markdown"},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"question":       map[string]any{"type": "string", "minLength": 1},
					"answer":         map[string]any{"type": "string", "minLength": 1},
					"answerLanguage": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "question", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"topicId", "title", "estimatedMinutes", "learningContent", "questions"},
	"additionalProperties": false,
}
