package helpers

import (
	"fmt"
	"math/big"

	"github.com/cyphera/settlement-engine/libs/go/types/api/requests"
	"github.com/cyphera/settlement-engine/libs/go/types/api/responses"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ToExitResponse converts a decoded exit into its API representation with
// hex-encoded byte fields and decimal amounts
func ToExitResponse(exit business.Exit) []responses.SingleAssetExitResponse {
	result := make([]responses.SingleAssetExitResponse, 0, len(exit))
	for _, singleAssetExit := range exit {
		result = append(result, ToSingleAssetExitResponse(singleAssetExit))
	}
	return result
}

// ToSingleAssetExitResponse converts one single-asset exit into its API
// representation
func ToSingleAssetExitResponse(singleAssetExit business.SingleAssetExit) responses.SingleAssetExitResponse {
	allocations := make([]responses.AllocationResponse, 0, len(singleAssetExit.Allocations))
	for _, allocation := range singleAssetExit.Allocations {
		allocations = append(allocations, responses.AllocationResponse{
			Destination:    allocation.Destination.Hex(),
			Amount:         allocation.Amount.String(),
			AllocationType: uint8(allocation.AllocationType),
			Metadata:       bytesToHex(allocation.Metadata),
		})
	}

	return responses.SingleAssetExitResponse{
		Asset:         singleAssetExit.Asset.Hex(),
		AssetType:     uint8(singleAssetExit.AssetMetadata.AssetType),
		AssetMetadata: bytesToHex(singleAssetExit.AssetMetadata.Metadata),
		Allocations:   allocations,
	}
}

// FromEncodeExitRequest converts an API exit submission into the business
// representation, validating every hex field and amount
func FromEncodeExitRequest(req requests.EncodeExitRequest) (business.Exit, error) {
	exit := make(business.Exit, 0, len(req.Exit))
	for i, singleAssetExitReq := range req.Exit {
		singleAssetExit, err := fromSingleAssetExitRequest(singleAssetExitReq)
		if err != nil {
			return nil, fmt.Errorf("exit entry %d: %w", i, err)
		}
		exit = append(exit, singleAssetExit)
	}
	return exit, nil
}

func fromSingleAssetExitRequest(req requests.SingleAssetExitRequest) (business.SingleAssetExit, error) {
	if !common.IsHexAddress(req.Asset) {
		return business.SingleAssetExit{}, fmt.Errorf("invalid asset address %q", req.Asset)
	}
	if req.AssetType > uint8(business.AssetTypeQualified) {
		return business.SingleAssetExit{}, fmt.Errorf("unknown asset type %d", req.AssetType)
	}

	assetMetadata, err := hexToBytes(req.AssetMetadata)
	if err != nil {
		return business.SingleAssetExit{}, fmt.Errorf("invalid asset metadata: %w", err)
	}

	allocations := make([]business.Allocation, 0, len(req.Allocations))
	for i, allocationReq := range req.Allocations {
		allocation, err := fromAllocationRequest(allocationReq)
		if err != nil {
			return business.SingleAssetExit{}, fmt.Errorf("allocation %d: %w", i, err)
		}
		allocations = append(allocations, allocation)
	}

	return business.SingleAssetExit{
		Asset: common.HexToAddress(req.Asset),
		AssetMetadata: business.AssetMetadata{
			AssetType: business.AssetType(req.AssetType),
			Metadata:  assetMetadata,
		},
		Allocations: allocations,
	}, nil
}

func fromAllocationRequest(req requests.AllocationRequest) (business.Allocation, error) {
	destinationBytes, err := hexutil.Decode(req.Destination)
	if err != nil {
		return business.Allocation{}, fmt.Errorf("invalid destination %q: %w", req.Destination, err)
	}
	if len(destinationBytes) != common.HashLength {
		return business.Allocation{}, fmt.Errorf("destination must be 32 bytes, got %d", len(destinationBytes))
	}

	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		return business.Allocation{}, fmt.Errorf("invalid amount %q", req.Amount)
	}
	if amount.Sign() < 0 {
		return business.Allocation{}, fmt.Errorf("amount %q is negative", req.Amount)
	}
	if req.AllocationType > uint8(business.AllocationTypeGuarantee) {
		return business.Allocation{}, fmt.Errorf("unknown allocation type %d", req.AllocationType)
	}

	metadata, err := hexToBytes(req.Metadata)
	if err != nil {
		return business.Allocation{}, fmt.Errorf("invalid metadata: %w", err)
	}

	return business.Allocation{
		Destination:    common.BytesToHash(destinationBytes),
		Amount:         amount,
		AllocationType: business.AllocationType(req.AllocationType),
		Metadata:       metadata,
	}, nil
}

func bytesToHex(data []byte) string {
	if len(data) == 0 {
		return "0x"
	}
	return hexutil.Encode(data)
}

func hexToBytes(value string) ([]byte, error) {
	if value == "" || value == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(value)
}
