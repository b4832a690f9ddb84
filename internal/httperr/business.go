package httperr

import "errors"

// Kind buckets a business failure so transports can pick a status code
// without string-matching.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool { return IsKind(err, KindConflict) }
