package errs

const (
	// CodeCPFNotProvided marks a body without a usable "cpf" field.
	CodeCPFNotProvided = "CPF_NOT_PROVIDED"

	// CodeInvalidCPF marks a "cpf" value that fails the checksum.
	CodeInvalidCPF = "INVALID_CPF"

	MessageCPFNotProvided = "CPF not provided in request body."
	MessageInvalidCPF     = "Invalid CPF."
)

// NewCPFNotProvidedError reports a missing, null or unparseable "cpf" field.
func NewCPFNotProvidedError() *HTTPError {
	code := CodeCPFNotProvided
	return NewBadRequestError(MessageCPFNotProvided, true, &code, []FieldError{
		{Field: "cpf", Error: "is required"},
	})
}

// NewInvalidCPFError reports a CPF that failed the checksum.
func NewInvalidCPFError() *HTTPError {
	code := CodeInvalidCPF
	return NewBadRequestError(MessageInvalidCPF, true, &code, nil)
}
