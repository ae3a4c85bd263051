package validator

// Validator checks a value against its validation rules.
//
// Implementations return nil when the value is valid, or an error describing
// the failing fields.
type Validator interface {
	Validate(data any) error
}
