package aclcache

import "errors"

// Domain errors for access-table cache backends.
var (
	// ErrNilClient is returned when a store is constructed without a backend client.
	ErrNilClient = errors.New("aclcache.nil_client")

	// ErrReadFailed is returned when the backend read fails.
	ErrReadFailed = errors.New("aclcache.read_failed")

	// ErrWriteFailed is returned when the backend write fails.
	ErrWriteFailed = errors.New("aclcache.write_failed")

	// ErrDecodeFailed is returned when a cached payload cannot be decoded.
	ErrDecodeFailed = errors.New("aclcache.decode_failed")
)
