package helpers

import (
	"github.com/cyphera/settlement-engine/libs/go/types/business"
)

// IsForeignAsset reports whether a single-asset exit is addressed to a chain
// or asset holder other than the given context. Only Qualified assets carry
// an address of their own; everything else is local by convention. Foreign
// exits are skipped by the settlement engine, never failed, so multi-chain
// exit bundles can be executed independently at each destination.
func IsForeignAsset(singleAssetExit business.SingleAssetExit, chain business.ChainContext) (bool, error) {
	if singleAssetExit.AssetMetadata.AssetType != business.AssetTypeQualified {
		return false, nil
	}

	qualified, err := DecodeQualifiedAssetMetadata(singleAssetExit.AssetMetadata.Metadata)
	if err != nil {
		return false, err
	}

	if chain.ChainID == nil || qualified.ChainID.Cmp(chain.ChainID) != 0 {
		return true, nil
	}
	if qualified.AssetHolder != chain.AssetHolder {
		return true, nil
	}
	return false, nil
}
