package helpers

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Metadata payload schemas. Each asset/allocation type carries an opaque
// bytes field whose layout is fixed by the discriminant next to it; these
// helpers decode the payload only after the discriminant has been inspected.
var (
	qualifiedMetadataComponents = []abi.ArgumentMarshaling{
		{Name: "chainID", Type: "uint256"},
		{Name: "assetHolder", Type: "address"},
	}

	withdrawHelperMetadataComponents = []abi.ArgumentMarshaling{
		{Name: "callTarget", Type: "address"},
		{Name: "callData", Type: "bytes"},
	}

	qualifiedMetadataArguments      = abi.Arguments{{Type: mustNewType("tuple", qualifiedMetadataComponents)}}
	withdrawHelperMetadataArguments = abi.Arguments{{Type: mustNewType("tuple", withdrawHelperMetadataComponents)}}
	tokenIDArguments                = abi.Arguments{{Type: mustNewType("uint256", nil)}}
)

type rawQualifiedAssetMetadata struct {
	ChainID     *big.Int
	AssetHolder common.Address
}

type rawWithdrawHelperMetadata struct {
	CallTarget common.Address
	CallData   []byte
}

// EncodeQualifiedAssetMetadata encodes the {chainID, assetHolder} payload of
// a Qualified asset
func EncodeQualifiedAssetMetadata(metadata business.QualifiedAssetMetadata) ([]byte, error) {
	if metadata.ChainID == nil {
		return nil, errors.New("qualified asset metadata chain id must not be nil")
	}

	encoded, err := qualifiedMetadataArguments.Pack(rawQualifiedAssetMetadata{
		ChainID:     metadata.ChainID,
		AssetHolder: metadata.AssetHolder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode qualified asset metadata: %w", err)
	}
	return encoded, nil
}

// DecodeQualifiedAssetMetadata decodes the {chainID, assetHolder} payload of
// a Qualified asset
func DecodeQualifiedAssetMetadata(data []byte) (*business.QualifiedAssetMetadata, error) {
	values, err := qualifiedMetadataArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	raw := *abi.ConvertType(values[0], new(rawQualifiedAssetMetadata)).(*rawQualifiedAssetMetadata)
	return &business.QualifiedAssetMetadata{
		ChainID:     raw.ChainID,
		AssetHolder: raw.AssetHolder,
	}, nil
}

// EncodeWithdrawHelperMetadata encodes the {callTarget, callData} payload of
// a withdraw-helper allocation
func EncodeWithdrawHelperMetadata(metadata business.WithdrawHelperMetadata) ([]byte, error) {
	encoded, err := withdrawHelperMetadataArguments.Pack(rawWithdrawHelperMetadata{
		CallTarget: metadata.CallTarget,
		CallData:   metadata.CallData,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode withdraw helper metadata: %w", err)
	}
	return encoded, nil
}

// DecodeWithdrawHelperMetadata decodes the {callTarget, callData} payload of
// a withdraw-helper allocation
func DecodeWithdrawHelperMetadata(data []byte) (*business.WithdrawHelperMetadata, error) {
	values, err := withdrawHelperMetadataArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	raw := *abi.ConvertType(values[0], new(rawWithdrawHelperMetadata)).(*rawWithdrawHelperMetadata)
	return &business.WithdrawHelperMetadata{
		CallTarget: raw.CallTarget,
		CallData:   raw.CallData,
	}, nil
}

// EncodeTokenID encodes the token id payload of an ERC-721 or ERC-1155 asset
func EncodeTokenID(tokenID *big.Int) ([]byte, error) {
	if tokenID == nil {
		return nil, errors.New("token id must not be nil")
	}

	encoded, err := tokenIDArguments.Pack(tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token id: %w", err)
	}
	return encoded, nil
}

// DecodeTokenID decodes the token id payload of an ERC-721 or ERC-1155 asset
func DecodeTokenID(data []byte) (*big.Int, error) {
	values, err := tokenIDArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	tokenID, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: token id is not a uint256", ErrMalformedEncoding)
	}
	return tokenID, nil
}
