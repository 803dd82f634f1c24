package domain

import (
	"errors"
)

var (
	MessageSuccessScanDetected = "barcode detected successfully"
	MessageFailedScanInit      = "failed to initialize barcode scanner"
	MessageFailedScanTimeout   = "scanning timed out, no barcode detected"
	MessageFailedScanActive    = "a scan session is already active"

	// ErrScanInitFailed reports a camera/device failure; the session is left
	// stopped and the user decides whether to retry.
	ErrScanInitFailed = errors.New("scanner initialization failed")
	ErrScanInProgress = errors.New("scan session already active")
	ErrScanTimeout    = errors.New("scan session timed out")
	ErrScanCancelled  = errors.New("scan session cancelled")
)
