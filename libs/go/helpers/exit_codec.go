package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrMalformedEncoding is returned when bytes presented for decoding are not
// a canonical encoding: inconsistent offsets or lengths, out-of-range enum
// ordinals, or an encoding with padding variants that re-encoding would not
// reproduce byte for byte.
var ErrMalformedEncoding = errors.New("malformed exit encoding")

// The wire layout is the Solidity ABI encoding of these tuples. It must stay
// bit-for-bit compatible with the on-chain representation, so the schema is
// declared once here and every codec entry point goes through it.
var (
	allocationComponents = []abi.ArgumentMarshaling{
		{Name: "destination", Type: "bytes32"},
		{Name: "amount", Type: "uint256"},
		{Name: "allocationType", Type: "uint8"},
		{Name: "metadata", Type: "bytes"},
	}

	assetMetadataComponents = []abi.ArgumentMarshaling{
		{Name: "assetType", Type: "uint8"},
		{Name: "metadata", Type: "bytes"},
	}

	singleAssetExitComponents = []abi.ArgumentMarshaling{
		{Name: "asset", Type: "address"},
		{Name: "assetMetadata", Type: "tuple", Components: assetMetadataComponents},
		{Name: "allocations", Type: "tuple[]", Components: allocationComponents},
	}

	allocationArguments      = abi.Arguments{{Type: mustNewType("tuple", allocationComponents)}}
	singleAssetExitArguments = abi.Arguments{{Type: mustNewType("tuple", singleAssetExitComponents)}}
	exitArguments            = abi.Arguments{{Type: mustNewType("tuple[]", singleAssetExitComponents)}}
)

func mustNewType(t string, components []abi.ArgumentMarshaling) abi.Type {
	created, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("invalid ABI type %q: %v", t, err))
	}
	return created
}

// rawAllocation mirrors business.Allocation with the exact field types the
// ABI packer expects. go-ethereum matches tuple components to struct fields
// by name, so field names here track the component names above.
type rawAllocation struct {
	Destination    [32]byte
	Amount         *big.Int
	AllocationType uint8
	Metadata       []byte
}

type rawAssetMetadata struct {
	AssetType uint8
	Metadata  []byte
}

type rawSingleAssetExit struct {
	Asset         common.Address
	AssetMetadata rawAssetMetadata
	Allocations   []rawAllocation
}

// EncodeAllocation produces the canonical encoding of a single allocation
func EncodeAllocation(allocation business.Allocation) ([]byte, error) {
	raw, err := toRawAllocation(allocation)
	if err != nil {
		return nil, err
	}

	encoded, err := allocationArguments.Pack(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode allocation: %w", err)
	}
	return encoded, nil
}

// DecodeAllocation is the exact inverse of EncodeAllocation
func DecodeAllocation(data []byte) (*business.Allocation, error) {
	values, err := allocationArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	raw := *abi.ConvertType(values[0], new(rawAllocation)).(*rawAllocation)
	allocation, err := fromRawAllocation(raw)
	if err != nil {
		return nil, err
	}

	if err := verifyCanonical(data, func() ([]byte, error) { return EncodeAllocation(*allocation) }); err != nil {
		return nil, err
	}
	return allocation, nil
}

// EncodeSingleAssetExit produces the canonical encoding of one asset's payouts
func EncodeSingleAssetExit(singleAssetExit business.SingleAssetExit) ([]byte, error) {
	raw, err := toRawSingleAssetExit(singleAssetExit)
	if err != nil {
		return nil, err
	}

	encoded, err := singleAssetExitArguments.Pack(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode single asset exit: %w", err)
	}
	return encoded, nil
}

// DecodeSingleAssetExit is the exact inverse of EncodeSingleAssetExit
func DecodeSingleAssetExit(data []byte) (*business.SingleAssetExit, error) {
	values, err := singleAssetExitArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	raw := *abi.ConvertType(values[0], new(rawSingleAssetExit)).(*rawSingleAssetExit)
	singleAssetExit, err := fromRawSingleAssetExit(raw)
	if err != nil {
		return nil, err
	}

	if err := verifyCanonical(data, func() ([]byte, error) { return EncodeSingleAssetExit(*singleAssetExit) }); err != nil {
		return nil, err
	}
	return singleAssetExit, nil
}

// EncodeExit produces the canonical encoding of a full exit. This is the form
// downstream systems hash, store and carry on-chain verbatim.
func EncodeExit(exit business.Exit) ([]byte, error) {
	raw := make([]rawSingleAssetExit, 0, len(exit))
	for i, singleAssetExit := range exit {
		converted, err := toRawSingleAssetExit(singleAssetExit)
		if err != nil {
			return nil, fmt.Errorf("single asset exit %d: %w", i, err)
		}
		raw = append(raw, converted)
	}

	encoded, err := exitArguments.Pack(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exit: %w", err)
	}
	return encoded, nil
}

// DecodeExit is the exact inverse of EncodeExit. Decoding validates that the
// input is canonical: re-encoding the result must reproduce the input bytes.
func DecodeExit(data []byte) (business.Exit, error) {
	values, err := exitArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	raw := *abi.ConvertType(values[0], new([]rawSingleAssetExit)).(*[]rawSingleAssetExit)
	exit := make(business.Exit, 0, len(raw))
	for i, rawExit := range raw {
		singleAssetExit, err := fromRawSingleAssetExit(rawExit)
		if err != nil {
			return nil, fmt.Errorf("single asset exit %d: %w", i, err)
		}
		exit = append(exit, *singleAssetExit)
	}

	if err := verifyCanonical(data, func() ([]byte, error) { return EncodeExit(exit) }); err != nil {
		return nil, err
	}
	return exit, nil
}

// ExitsEqual reports whether two exits have identical canonical encodings.
// This is deep structural equality, not semantic equivalence: exits that
// differ only in metadata byte representation are not equal.
func ExitsEqual(a, b business.Exit) (bool, error) {
	encodedA, err := EncodeExit(a)
	if err != nil {
		return false, err
	}
	encodedB, err := EncodeExit(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(encodedA, encodedB), nil
}

// HashExit returns the keccak256 digest of the canonical exit encoding
func HashExit(exit business.Exit) (common.Hash, error) {
	encoded, err := EncodeExit(exit)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// verifyCanonical rejects inputs that decode successfully but are not the
// unique canonical encoding of their logical value
func verifyCanonical(data []byte, reencode func() ([]byte, error)) error {
	encoded, err := reencode()
	if err != nil {
		return err
	}
	if !bytes.Equal(encoded, data) {
		return fmt.Errorf("%w: input is not the canonical encoding", ErrMalformedEncoding)
	}
	return nil
}

func toRawAllocation(allocation business.Allocation) (rawAllocation, error) {
	if allocation.Amount == nil {
		return rawAllocation{}, errors.New("allocation amount must not be nil")
	}
	if allocation.Amount.Sign() < 0 {
		return rawAllocation{}, errors.New("allocation amount must not be negative")
	}

	return rawAllocation{
		Destination:    allocation.Destination,
		Amount:         allocation.Amount,
		AllocationType: uint8(allocation.AllocationType),
		Metadata:       allocation.Metadata,
	}, nil
}

func fromRawAllocation(raw rawAllocation) (*business.Allocation, error) {
	if raw.AllocationType > uint8(business.AllocationTypeGuarantee) {
		return nil, fmt.Errorf("%w: unknown allocation type %d", ErrMalformedEncoding, raw.AllocationType)
	}

	return &business.Allocation{
		Destination:    raw.Destination,
		Amount:         raw.Amount,
		AllocationType: business.AllocationType(raw.AllocationType),
		Metadata:       raw.Metadata,
	}, nil
}

func toRawSingleAssetExit(singleAssetExit business.SingleAssetExit) (rawSingleAssetExit, error) {
	allocations := make([]rawAllocation, 0, len(singleAssetExit.Allocations))
	for i, allocation := range singleAssetExit.Allocations {
		raw, err := toRawAllocation(allocation)
		if err != nil {
			return rawSingleAssetExit{}, fmt.Errorf("allocation %d: %w", i, err)
		}
		allocations = append(allocations, raw)
	}

	return rawSingleAssetExit{
		Asset: singleAssetExit.Asset,
		AssetMetadata: rawAssetMetadata{
			AssetType: uint8(singleAssetExit.AssetMetadata.AssetType),
			Metadata:  singleAssetExit.AssetMetadata.Metadata,
		},
		Allocations: allocations,
	}, nil
}

func fromRawSingleAssetExit(raw rawSingleAssetExit) (*business.SingleAssetExit, error) {
	if raw.AssetMetadata.AssetType > uint8(business.AssetTypeQualified) {
		return nil, fmt.Errorf("%w: unknown asset type %d", ErrMalformedEncoding, raw.AssetMetadata.AssetType)
	}

	allocations := make([]business.Allocation, 0, len(raw.Allocations))
	for i, rawAlloc := range raw.Allocations {
		allocation, err := fromRawAllocation(rawAlloc)
		if err != nil {
			return nil, fmt.Errorf("allocation %d: %w", i, err)
		}
		allocations = append(allocations, *allocation)
	}

	return &business.SingleAssetExit{
		Asset: raw.Asset,
		AssetMetadata: business.AssetMetadata{
			AssetType: business.AssetType(raw.AssetMetadata.AssetType),
			Metadata:  raw.AssetMetadata.Metadata,
		},
		Allocations: allocations,
	}, nil
}
