package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrMasterNotFound   = errors.New("master not found")
	ErrResourceNotFound = errors.New("resource not found")

	// Lease errors
	ErrLeaseRejected    = errors.New("lease rejected")
	ErrContractConflict = errors.New("contract conflict")
	ErrInvalidDayRange  = errors.New("invalid day range")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
