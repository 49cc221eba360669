package ripemd

import (
	"fmt"

	"github.com/storacha/go-ripemd/core/result/failure"
)

// UnsupportedVariantError is returned when a digest length other than 128,
// 160, 256 or 320 bits is requested.
type UnsupportedVariantError struct {
	failure.NamedWithStackTrace
	Bits int
}

func NewUnsupportedVariantError(bits int) error {
	return UnsupportedVariantError{failure.NamedWithCurrentStackTrace("UnsupportedVariant"), bits}
}

func (e UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported RIPEMD variant: %d bits", e.Bits)
}

// InvalidStateSnapshotError is returned when a [State] cannot be loaded into
// a hasher, either because it belongs to another variant or because its
// fields are inconsistent with each other.
type InvalidStateSnapshotError struct {
	failure.NamedWithStackTrace
	Reason string
}

func NewInvalidStateSnapshotError(format string, a ...any) error {
	return InvalidStateSnapshotError{failure.NamedWithCurrentStackTrace("InvalidStateSnapshot"), fmt.Sprintf(format, a...)}
}

func (e InvalidStateSnapshotError) Error() string {
	return "invalid state snapshot: " + e.Reason
}
