package httperr

import "errors"

// Códigos de negócio usados pelo domínio: empty_field,
// missing_required_field, invalid_phone, invalid_date_or_time,
// past_date_time, illegal_transition, illegal_deletion, not_found,
// service_not_found, version_conflict.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
