package helpers

import (
	"github.com/ethereum/go-ethereum/common"
)

// IsExternalDestination reports whether a 32-byte allocation destination is a
// zero-padded 20-byte account address. Destinations with any of the upper 12
// bytes set are opaque protocol identifiers and must never receive a direct
// payout.
func IsExternalDestination(destination common.Hash) bool {
	for _, b := range destination[:12] {
		if b != 0 {
			return false
		}
	}
	return true
}

// DestinationToAddress extracts the account address from an external
// destination. Callers must check IsExternalDestination first.
func DestinationToAddress(destination common.Hash) common.Address {
	return common.BytesToAddress(destination[12:])
}

// AddressToDestination left-pads an account address into destination form
func AddressToDestination(address common.Address) common.Hash {
	return common.BytesToHash(address.Bytes())
}
