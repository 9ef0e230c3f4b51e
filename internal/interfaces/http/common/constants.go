package common

import "time"

const (
	// MaxRequestBody limits JSON request bodies for compare endpoints.
	MaxRequestBody = 1 << 16
	// RequestTimeout bounds the work a single handler may do.
	RequestTimeout = 5 * time.Second
)
