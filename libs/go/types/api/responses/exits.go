package responses

// AllocationResponse represents one decoded payout line
type AllocationResponse struct {
	Destination    string `json:"destination"`
	Amount         string `json:"amount"`
	AllocationType uint8  `json:"allocation_type"`
	Metadata       string `json:"metadata,omitempty"`
}

// SingleAssetExitResponse represents one decoded single-asset exit
type SingleAssetExitResponse struct {
	Asset         string               `json:"asset"`
	AssetType     uint8                `json:"asset_type"`
	AssetMetadata string               `json:"asset_metadata,omitempty"`
	Allocations   []AllocationResponse `json:"allocations"`
}

// DecodeExitResponse represents the response for decoding an encoded exit
type DecodeExitResponse struct {
	Exit []SingleAssetExitResponse `json:"exit"`
}

// EncodeExitResponse represents the response for encoding an exit
type EncodeExitResponse struct {
	EncodedExit string `json:"encoded_exit"`
}

// HashExitResponse represents the response for hashing an encoded exit
type HashExitResponse struct {
	Hash string `json:"hash"`
}

// DiffExitsResponse represents the response for comparing two encoded exits
type DiffExitsResponse struct {
	Equal bool `json:"equal"`
}
