package advisor

import "github.com/upb/career-advisor/services/decoder"

// Minimal shapes a model reply must have before it is accepted.
// Anything richer is passed through untouched.
var (
	multipleChoiceSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["q", "options", "correct"],
		"properties": {
			"q": {"type": "string", "minLength": 1},
			"options": {"type": "array", "minItems": 2, "items": {"type": "string"}},
			"correct": {"type": "string"}
		}
	}`)

	codingSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["problem"],
		"properties": {"problem": {"type": "string", "minLength": 1}}
	}`)

	interviewQuestionSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["question"],
		"properties": {"question": {"type": "string", "minLength": 1}}
	}`)

	interviewReportSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["status", "score", "feedback"],
		"properties": {
			"status": {"type": "string"},
			"score": {"type": "number", "minimum": 0, "maximum": 100},
			"feedback": {"type": "array"}
		}
	}`)

	chatSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["response"],
		"properties": {
			"response": {"type": "string"},
			"roles": {"type": "array"},
			"suggestions": {"type": "array"}
		}
	}`)

	companyPlanSchema = decoder.MustSchema(`{
		"type": "object",
		"properties": {
			"insights": {"type": "object"},
			"weeks": {"type": "array"}
		}
	}`)

	reportCardSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["readiness_score"],
		"properties": {
			"readiness_score": {"type": "number", "minimum": 0, "maximum": 100},
			"status_label": {"type": "string"}
		}
	}`)

	hrEmailSchema = decoder.MustSchema(`{
		"type": "object",
		"required": ["email_content"],
		"properties": {"email_content": {"type": "string", "minLength": 1}}
	}`)
)
