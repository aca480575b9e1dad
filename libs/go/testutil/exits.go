package testutil

import (
	"math/big"
	"testing"

	"github.com/cyphera/settlement-engine/libs/go/helpers"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// SimpleAllocation builds a plain payout line to an account address
func SimpleAllocation(destination common.Address, amount int64) business.Allocation {
	return business.Allocation{
		Destination:    helpers.AddressToDestination(destination),
		Amount:         big.NewInt(amount),
		AllocationType: business.AllocationTypeSimple,
		Metadata:       []byte{},
	}
}

// NativeSingleAssetExit builds a native-currency exit with the given
// allocations in declared order
func NativeSingleAssetExit(allocations ...business.Allocation) business.SingleAssetExit {
	return business.SingleAssetExit{
		Asset:         common.Address{},
		AssetMetadata: business.AssetMetadata{AssetType: business.AssetTypeDefault, Metadata: []byte{}},
		Allocations:   allocations,
	}
}

// ERC20SingleAssetExit builds a fungible-token exit for the given token
func ERC20SingleAssetExit(token common.Address, allocations ...business.Allocation) business.SingleAssetExit {
	return business.SingleAssetExit{
		Asset:         token,
		AssetMetadata: business.AssetMetadata{AssetType: business.AssetTypeDefault, Metadata: []byte{}},
		Allocations:   allocations,
	}
}

// ERC721SingleAssetExit builds a single non-fungible token exit
func ERC721SingleAssetExit(t *testing.T, token common.Address, tokenID int64, allocations ...business.Allocation) business.SingleAssetExit {
	t.Helper()

	metadata, err := helpers.EncodeTokenID(big.NewInt(tokenID))
	require.NoError(t, err)

	return business.SingleAssetExit{
		Asset:         token,
		AssetMetadata: business.AssetMetadata{AssetType: business.AssetTypeERC721, Metadata: metadata},
		Allocations:   allocations,
	}
}

// ERC1155SingleAssetExit builds a multi-token exit
func ERC1155SingleAssetExit(t *testing.T, token common.Address, tokenID int64, allocations ...business.Allocation) business.SingleAssetExit {
	t.Helper()

	metadata, err := helpers.EncodeTokenID(big.NewInt(tokenID))
	require.NoError(t, err)

	return business.SingleAssetExit{
		Asset:         token,
		AssetMetadata: business.AssetMetadata{AssetType: business.AssetTypeERC1155, Metadata: metadata},
		Allocations:   allocations,
	}
}

// QualifiedNativeSingleAssetExit builds a qualified native exit addressed to
// the given chain and asset holder
func QualifiedNativeSingleAssetExit(t *testing.T, chainID int64, assetHolder common.Address, allocations ...business.Allocation) business.SingleAssetExit {
	t.Helper()

	metadata, err := helpers.EncodeQualifiedAssetMetadata(business.QualifiedAssetMetadata{
		ChainID:     big.NewInt(chainID),
		AssetHolder: assetHolder,
	})
	require.NoError(t, err)

	return business.SingleAssetExit{
		Asset:         common.Address{},
		AssetMetadata: business.AssetMetadata{AssetType: business.AssetTypeQualified, Metadata: metadata},
		Allocations:   allocations,
	}
}

// WithdrawHelperAllocation builds a payout line that invokes a withdraw
// helper after the transfer succeeds
func WithdrawHelperAllocation(t *testing.T, destination common.Address, amount int64, callTarget common.Address, callData []byte) business.Allocation {
	t.Helper()

	metadata, err := helpers.EncodeWithdrawHelperMetadata(business.WithdrawHelperMetadata{
		CallTarget: callTarget,
		CallData:   callData,
	})
	require.NoError(t, err)

	return business.Allocation{
		Destination:    helpers.AddressToDestination(destination),
		Amount:         big.NewInt(amount),
		AllocationType: business.AllocationTypeWithdrawHelper,
		Metadata:       metadata,
	}
}

// GuaranteeAllocation builds a guarantee line with an opaque destination;
// the settlement engine skips these
func GuaranteeAllocation(target common.Hash, amount int64) business.Allocation {
	return business.Allocation{
		Destination:    target,
		Amount:         big.NewInt(amount),
		AllocationType: business.AllocationTypeGuarantee,
		Metadata:       []byte{},
	}
}
