package selector

import "github.com/abhisek/paceline/internal/llm"

var weekdayNames = []any{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// SelectionSchema is the structured-output contract for advisory selection
// responses. The template_id values are further constrained per day by
// ValidateSelection; the schema only pins the shape.
func SelectionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "week_template_selection",
		Description: "One session template choice per training day of a single week",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"week_index": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the week being selected for",
				},
				"selections": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"day": map[string]any{
								"type": "string",
								"enum": weekdayNames,
							},
							"template_id": map[string]any{
								"type":        "string",
								"description": "ID of a template from that day's candidate list",
							},
						},
						"required":             []any{"day", "template_id"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"week_index", "selections"},
			"additionalProperties": false,
		},
	}
}
