package chessdto

// DomainError is a presentable problem, such as a bad start position in the
// config.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "termchess error"
}

func (e DomainError) Unwrap() error { return e.Err }
