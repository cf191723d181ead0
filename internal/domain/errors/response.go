package errors

// FieldError describes one failed validation rule of a request field.
// It is returned as the details of VALIDATION_FAILED.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}
