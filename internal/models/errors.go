package models

// ValidationError carries a message meant to be shown to the operator
// verbatim (empty cart, duplicate barcode, bad price...). Callers check for
// it with errors.As and map it to a 400; anything else is a storage fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError from a plain message.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
