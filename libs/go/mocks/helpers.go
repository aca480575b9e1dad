package mocks

import (
	"testing"

	"github.com/cyphera/settlement-engine/libs/go/interfaces"
	"go.uber.org/mock/gomock"
)

// NewMockAssetClientsForTest creates a full set of mock asset clients wired
// into an interfaces.AssetClients bundle for testing
func NewMockAssetClientsForTest(t *testing.T) (interfaces.AssetClients, *MockAssetClients) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClients := &MockAssetClients{
		Native:         NewMockNativeAssetClient(ctrl),
		ERC20:          NewMockERC20Client(ctrl),
		ERC721:         NewMockERC721Client(ctrl),
		ERC1155:        NewMockERC1155Client(ctrl),
		WithdrawHelper: NewMockWithdrawHelperClient(ctrl),
	}

	clients := interfaces.AssetClients{
		Native:         mockClients.Native,
		ERC20:          mockClients.ERC20,
		ERC721:         mockClients.ERC721,
		ERC1155:        mockClients.ERC1155,
		WithdrawHelper: mockClients.WithdrawHelper,
	}
	return clients, mockClients
}

// MockAssetClients exposes the concrete mocks behind an AssetClients bundle
// so tests can set expectations on them
type MockAssetClients struct {
	Native         *MockNativeAssetClient
	ERC20          *MockERC20Client
	ERC721         *MockERC721Client
	ERC1155        *MockERC1155Client
	WithdrawHelper *MockWithdrawHelperClient
}
