package services

import "errors"

var (
	// ErrInvalidDestination means an allocation destination is not a
	// zero-padded 20-byte account address
	ErrInvalidDestination = errors.New("allocation destination is not an external address")

	// ErrInvalidAmount means a non-fungible single-token allocation carries
	// an amount other than 1
	ErrInvalidAmount = errors.New("amount must be 1 for an ERC721 exit")

	// ErrUnsupportedAsset means the asset type is not recognized by the
	// dispatch logic, including a Qualified asset that reached token dispatch
	ErrUnsupportedAsset = errors.New("unsupported asset type")

	// ErrTransferFailed means the underlying native or token transfer
	// capability reported failure
	ErrTransferFailed = errors.New("asset transfer failed")

	// ErrHelperFailed means a withdraw helper invocation failed after its
	// payout succeeded
	ErrHelperFailed = errors.New("withdraw helper execution failed")
)
