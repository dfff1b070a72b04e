package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrBackendUnavailable = errors.New("studio api unreachable")
	ErrBackendRejected    = errors.New("studio api rejected the request")
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrUploadInProgress   = errors.New("an upload batch is already in progress")
	ErrNoActiveWorkshop   = errors.New("no workshop selected for registration")
	ErrWorkshopNotFound   = errors.New("workshop not found")
)

// ErrCheckoutUnavailable means the backend accepted the registration but did
// not return a checkout URL, so payment cannot start. Treated as a rejection:
// the registration modal stays open and the visitor may retry.
var ErrCheckoutUnavailable = fmt.Errorf("%w: no checkout url in response", ErrBackendRejected)

// FileError records one failed file inside an upload batch.
type FileError struct {
	Name string
	Err  error
}

// UploadBatchError reports the files that failed within one upload batch.
// Files that succeeded have already been uploaded; the failures are named so
// the caller can surface them individually.
type UploadBatchError struct {
	Failed []FileError
}

func (e *UploadBatchError) Error() string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = f.Name
	}
	return fmt.Sprintf("upload failed for %d file(s): %s", len(e.Failed), strings.Join(names, ", "))
}

// FailedNames lists the original names of the files that failed.
func (e *UploadBatchError) FailedNames() []string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = f.Name
	}
	return names
}
