package bloomstore

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound      = "BlobNotFound"
	azblobBlobAlreadyExists = "BlobAlreadyExists"
	azblobConditionNotMet   = "ConditionNotMet"
)

// AsStorageError unwraps the azure sdk storage error carried by err, if any.
// The sdk error may be wrapped, eg by *azblob.Error.
func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	var ierr *azStorageBlob.InternalError
	if !errors.As(err, &ierr) || ierr == nil {
		return azStorageBlob.StorageError{}, false
	}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

func hasStorageErrorCode(err error, codes ...string) bool {
	serr, ok := AsStorageError(err)
	if !ok {
		return false
	}
	for _, code := range codes {
		if string(serr.ErrorCode) == code {
			return true
		}
	}
	return false
}

// WrapBlobNotFound translates err to ErrBlobNotFound if it is the azure sdk
// blob not found error. Any other err, including nil, is returned as is.
func WrapBlobNotFound(err error) error {
	if err == nil || !hasStorageErrorCode(err, azblobBlobNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", err.Error(), ErrBlobNotFound)
}

// WrapBlobExists translates the azure sdk errors for a failed create-only
// write to ErrBlobExists.
func WrapBlobExists(err error) error {
	if err == nil || !hasStorageErrorCode(err, azblobBlobAlreadyExists, azblobConditionNotMet) {
		return err
	}
	return fmt.Errorf("%s: %w", err.Error(), ErrBlobExists)
}

func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBlobNotFound) {
		return true
	}
	return hasStorageErrorCode(err, azblobBlobNotFound)
}
