package quizgen

import "github.com/azzautomation2026/shama/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A complete multiple-choice assessment generated from source content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "An academic title for the assessment",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "The educational objectives of this quiz",
			},
			"gapAnalysis": map[string]any{
				"type":        "string",
				"description": "A 2-3 sentence analysis of the understanding gaps (points of potential confusion) in the content",
			},
			"nextLevelPreview": map[string]any{
				"type":        "string",
				"description": "A suggestion for deepening knowledge, or a mastery challenge hint for a higher difficulty",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Unique integer id within the quiz",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The pedagogical challenge text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly four plausible academic options",
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index (0-3) of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct and how it relates to the broader concept",
						},
					},
					"required": []any{"id", "question", "options", "correctAnswerIndex", "explanation"},
				},
			},
		},
		"required": []any{"title", "description", "gapAnalysis", "nextLevelPreview", "questions"},
	},
}
