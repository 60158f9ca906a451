package validation

// Validator checks a struct against its validate tags. It returns a message
// per failing field, keyed by the field's json name, or nil when s is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// Func adapts an ordinary function to a Validator.
type Func func(s any) map[string]string

var _ Validator = Func(nil)

func (f Func) ValidateStruct(s any) map[string]string {
	return f(s)
}
