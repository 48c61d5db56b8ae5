package httperr

import "errors"

// BusinessError carries a stable snake_case code that is safe to show to
// API clients.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf returns the business code wrapped anywhere in err.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
