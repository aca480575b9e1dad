package requests

// AllocationRequest represents one payout line in an exit submitted for
// encoding. Amounts are decimal strings; destination and metadata are
// 0x-prefixed hex.
type AllocationRequest struct {
	Destination    string `json:"destination" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	AllocationType uint8  `json:"allocation_type"`
	Metadata       string `json:"metadata,omitempty"`
}

// SingleAssetExitRequest represents one asset's payouts in an exit submitted
// for encoding
type SingleAssetExitRequest struct {
	Asset         string              `json:"asset" binding:"required"`
	AssetType     uint8               `json:"asset_type"`
	AssetMetadata string              `json:"asset_metadata,omitempty"`
	Allocations   []AllocationRequest `json:"allocations"`
}

// EncodeExitRequest represents the request body for encoding an exit
type EncodeExitRequest struct {
	Exit []SingleAssetExitRequest `json:"exit" binding:"required"`
}

// DecodeExitRequest represents the request body for decoding an encoded exit
type DecodeExitRequest struct {
	EncodedExit string `json:"encoded_exit" binding:"required"`
}

// HashExitRequest represents the request body for hashing an encoded exit
type HashExitRequest struct {
	EncodedExit string `json:"encoded_exit" binding:"required"`
}

// DiffExitsRequest represents the request body for comparing two encoded
// exits for semantic equality
type DiffExitsRequest struct {
	LeftEncodedExit  string `json:"left_encoded_exit" binding:"required"`
	RightEncodedExit string `json:"right_encoded_exit" binding:"required"`
}
