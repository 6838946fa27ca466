package bill

import "errors"

var (
	ErrBillNotFound = errors.New("bill not found")
)
