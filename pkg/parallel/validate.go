package parallel

import apperrors "github.com/antineutrino2/jtk/pkg/errors"

// validateRange enforces the two preconditions every entry point shares:
// begin < end and step > 0. A violation is a caller-argument error,
// surfaced synchronously before any task is constructed.
func validateRange(begin, end, step int) error {
	if begin >= end {
		return apperrors.ErrInvalidRange
	}
	if step <= 0 {
		return apperrors.ErrInvalidStep
	}
	return nil
}

// validateChunk enforces the precondition on an explicitly supplied chunk.
func validateChunk(chunk int) error {
	if chunk <= 0 {
		return apperrors.ErrInvalidChunk
	}
	return nil
}
