// Package validation carries the field-level validation types shared by the
// entity validators. Validators are pure: no storage access, no side
// effects, every rule reported (no short-circuiting).
package validation

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

func ResultOf(errs []FieldError) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Messages flattens the field errors for the response envelope.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}
