package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AllocationType describes how a single payout line is settled
type AllocationType uint8

const (
	// AllocationTypeSimple pays the amount straight to the destination
	AllocationTypeSimple AllocationType = iota
	// AllocationTypeWithdrawHelper pays like simple, then invokes an external
	// withdraw helper with the paid amount and the call data in Metadata
	AllocationTypeWithdrawHelper
	// AllocationTypeGuarantee is reserved for higher-level protocol use; the
	// settlement engine never pays it out as currency
	AllocationTypeGuarantee
)

// AssetType describes which transfer mechanism an asset requires
type AssetType uint8

const (
	// AssetTypeDefault covers the native currency and ERC-20 style tokens
	AssetTypeDefault AssetType = iota
	// AssetTypeERC721 is a single non-fungible token (amount must be 1)
	AssetTypeERC721
	// AssetTypeERC1155 is a multi-token standard transfer
	AssetTypeERC1155
	// AssetTypeQualified marks an asset whose real location (chain + holder)
	// is carried in the asset metadata rather than the asset field
	AssetTypeQualified
)

// Allocation is one payout line item within a single-asset exit
type Allocation struct {
	// Destination is either a zero-padded 20-byte account address (upper 12
	// bytes zero) or an opaque identifier for non-payout allocation types
	Destination common.Hash `json:"destination"`
	// Amount is the quantity of the asset to move
	Amount *big.Int `json:"amount"`
	// AllocationType selects the settlement behavior for this line
	AllocationType AllocationType `json:"allocation_type"`
	// Metadata is interpreted per allocation type: empty for simple payouts,
	// an encoded {callTarget, callData} pair for withdraw-helper payouts
	Metadata []byte `json:"metadata,omitempty"`
}

// AssetMetadata qualifies how an asset's transfer must be performed
type AssetMetadata struct {
	AssetType AssetType `json:"asset_type"`
	// Metadata is interpreted per asset type: empty for Default, an encoded
	// token id for ERC-721/ERC-1155, an encoded {chainID, assetHolder} pair
	// for Qualified assets
	Metadata []byte `json:"metadata,omitempty"`
}

// SingleAssetExit describes one asset's worth of payouts. Allocation order is
// semantically significant: earlier allocations have priority to be paid
// first under partial-failure conditions and must never be reordered.
type SingleAssetExit struct {
	// Asset is the token contract address; the zero address denotes the
	// chain's native currency
	Asset         common.Address `json:"asset"`
	AssetMetadata AssetMetadata  `json:"asset_metadata"`
	Allocations   []Allocation   `json:"allocations"`
}

// Exit is an ordered list of single-asset exits settled in one action
type Exit []SingleAssetExit

// TotalAllocated sums the amounts of every allocation in the exit,
// including guarantee lines. Nil amounts count as zero.
func (s SingleAssetExit) TotalAllocated() *big.Int {
	total := new(big.Int)
	for _, allocation := range s.Allocations {
		if allocation.Amount != nil {
			total.Add(total, allocation.Amount)
		}
	}
	return total
}

// TotalPayable sums the amounts the settlement engine will actually move,
// which excludes guarantee allocations
func (s SingleAssetExit) TotalPayable() *big.Int {
	total := new(big.Int)
	for _, allocation := range s.Allocations {
		if allocation.AllocationType == AllocationTypeGuarantee {
			continue
		}
		if allocation.Amount != nil {
			total.Add(total, allocation.Amount)
		}
	}
	return total
}
