package lifecycle_sweep

import "errors"

var (
	// ErrInternal возвращается, когда проход не смог даже начаться
	// (не получен список активных объявлений)
	ErrInternal = errors.New("lifecycle_sweep: internal error")
)
