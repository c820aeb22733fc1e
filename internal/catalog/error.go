package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrRequestFailed   = errors.New("catalog request failed")
)
