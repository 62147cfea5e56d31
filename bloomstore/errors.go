package bloomstore

import "errors"

var (
	ErrNameRequired   = errors.New("bloomstore: a filter name is required")
	ErrFilterNotFound = errors.New("bloomstore: filter not found")
	ErrHashMismatch   = errors.New("bloomstore: stored filter was built with a different hash")
	ErrHashUnrecorded = errors.New("bloomstore: stored filter has no hash recorded")
	ErrBlobRead       = errors.New("bloomstore: failed to read filter blob")
	ErrBlobWrite      = errors.New("bloomstore: failed to write filter blob")

	// ErrBlobNotFound and ErrBlobExists are returned (wrapped) by BlobStore
	// implementations.
	ErrBlobNotFound = errors.New("bloomstore: blob not found")
	ErrBlobExists   = errors.New("bloomstore: blob already exists")
)
