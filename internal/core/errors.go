package core

import "errors"

var (
	ErrNodeNotFound = errors.New("node not found")

	ErrUnexpectedResultType = errors.New("unexpected result type from Prometheus")
)
