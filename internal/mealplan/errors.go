package mealplan

import "errors"

// Parse/validation failures. Format errors (no JSON, malformed JSON) and
// contract errors (shape, count, tolerance) are always fatal to a generation
// attempt; no partial meal list is ever returned.
var (
	ErrNoJSONFound       = errors.New("no JSON object found in AI response")
	ErrMalformedJSON     = errors.New("AI response JSON is malformed")
	ErrMissingMeals      = errors.New("AI response has no meals array")
	ErrMealCountMismatch = errors.New("AI response meal count does not match requested structure")
	ErrMacroTolerance    = errors.New("AI response daily totals exceed macro tolerance")
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPlanNotFound = errors.New("plan not found")
	ErrBadSlotIndex = errors.New("slot index out of range")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeLLM        = "llm_error"
	ErrorCodeAIFormat   = "ai_format_error"
	ErrorCodeAIContract = "ai_contract_error"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeStorage    = "storage_error"
	ErrorCodeInternal   = "internal_error"
)
