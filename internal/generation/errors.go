package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImageReturned indicates the provider responded without any inline image payload.
	ErrNoImageReturned = errors.New("no image data received")
	// ErrNoVideoReturned indicates a completed video operation carried no result locator.
	ErrNoVideoReturned = errors.New("video generation finished without a video")
	// ErrDownloadFailed indicates the follow-up fetch of generated video bytes failed.
	ErrDownloadFailed = errors.New("failed to download generated video")
	// ErrPollTimeout indicates the video operation did not complete within the configured poll budget.
	ErrPollTimeout = errors.New("video generation did not complete in time")
)

// ValidationError reports invalid request input detected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
