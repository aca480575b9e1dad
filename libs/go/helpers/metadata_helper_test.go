package helpers_test

import (
	"math/big"
	"testing"

	"github.com/cyphera/settlement-engine/libs/go/helpers"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiedAssetMetadataRoundTrip(t *testing.T) {
	metadata := business.QualifiedAssetMetadata{
		ChainID:     big.NewInt(42161),
		AssetHolder: helperAddress,
	}

	encoded, err := helpers.EncodeQualifiedAssetMetadata(metadata)
	require.NoError(t, err)
	// Static tuple: two words, no offset table
	assert.Len(t, encoded, 64)

	decoded, err := helpers.DecodeQualifiedAssetMetadata(encoded)
	require.NoError(t, err)
	assert.Equal(t, metadata, *decoded)
}

func TestEncodeQualifiedAssetMetadata_NilChainID(t *testing.T) {
	_, err := helpers.EncodeQualifiedAssetMetadata(business.QualifiedAssetMetadata{AssetHolder: helperAddress})
	assert.Error(t, err)
}

func TestDecodeQualifiedAssetMetadata_Malformed(t *testing.T) {
	_, err := helpers.DecodeQualifiedAssetMetadata([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, helpers.ErrMalformedEncoding)
}

func TestWithdrawHelperMetadataRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		metadata business.WithdrawHelperMetadata
	}{
		{
			name: "with call data",
			metadata: business.WithdrawHelperMetadata{
				CallTarget: helperAddress,
				CallData:   []byte{0xca, 0xfe, 0xba, 0xbe},
			},
		},
		{
			name: "empty call data",
			metadata: business.WithdrawHelperMetadata{
				CallTarget: helperAddress,
				CallData:   []byte{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := helpers.EncodeWithdrawHelperMetadata(tt.metadata)
			require.NoError(t, err)

			decoded, err := helpers.DecodeWithdrawHelperMetadata(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.metadata, *decoded)
		})
	}
}

func TestDecodeWithdrawHelperMetadata_Malformed(t *testing.T) {
	_, err := helpers.DecodeWithdrawHelperMetadata(make([]byte, 31))
	assert.ErrorIs(t, err, helpers.ErrMalformedEncoding)
}

func TestTokenIDRoundTrip(t *testing.T) {
	encoded, err := helpers.EncodeTokenID(big.NewInt(7777))
	require.NoError(t, err)
	assert.Len(t, encoded, 32)

	decoded, err := helpers.DecodeTokenID(encoded)
	require.NoError(t, err)
	assert.Equal(t, int64(7777), decoded.Int64())
}

func TestEncodeTokenID_Nil(t *testing.T) {
	_, err := helpers.EncodeTokenID(nil)
	assert.Error(t, err)
}

func TestDecodeTokenID_Malformed(t *testing.T) {
	_, err := helpers.DecodeTokenID([]byte{})
	assert.ErrorIs(t, err, helpers.ErrMalformedEncoding)
}
