package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// QualifiedAssetMetadata is the decoded metadata payload of a Qualified
// asset. It names the execution context the exit is addressed to; exits whose
// metadata does not match the current chain and asset holder are skipped.
type QualifiedAssetMetadata struct {
	ChainID     *big.Int       `json:"chain_id"`
	AssetHolder common.Address `json:"asset_holder"`
}

// WithdrawHelperMetadata is the decoded metadata payload of a withdraw-helper
// allocation: the helper contract to invoke after the payout and the call
// data to hand it alongside the paid amount.
type WithdrawHelperMetadata struct {
	CallTarget common.Address `json:"call_target"`
	CallData   []byte         `json:"call_data,omitempty"`
}
