package services_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/cyphera/settlement-engine/libs/go/mocks"
	"github.com/cyphera/settlement-engine/libs/go/services"
	"github.com/cyphera/settlement-engine/libs/go/testutil"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	usdcAddress   = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	nftAddress    = common.HexToAddress("0x4444444444444444444444444444444444444444")
	aliceAddress  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bobAddress    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	helperAddress = common.HexToAddress("0x3333333333333333333333333333333333333333")
	holderAddress = common.HexToAddress("0x5555555555555555555555555555555555555555")
)

func testChain() business.ChainContext {
	return business.ChainContext{
		ChainID:     big.NewInt(1),
		AssetHolder: holderAddress,
	}
}

func TestExecuteExit_NativePayouts(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	exit := business.Exit{
		testutil.NativeSingleAssetExit(
			testutil.SimpleAllocation(aliceAddress, 100),
			testutil.SimpleAllocation(bobAddress, 250),
		),
	}

	gomock.InOrder(
		mockClients.Native.EXPECT().Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).Return(nil),
		mockClients.Native.EXPECT().Transfer(gomock.Any(), bobAddress, big.NewInt(250)).Return(nil),
	)

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	require.NoError(t, err)
}

func TestExecuteExit_ERC20Payout(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	exit := business.Exit{
		testutil.ERC20SingleAssetExit(usdcAddress, testutil.SimpleAllocation(aliceAddress, 500)),
	}

	mockClients.ERC20.EXPECT().
		Transfer(gomock.Any(), usdcAddress, aliceAddress, big.NewInt(500)).
		Return(nil)

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	require.NoError(t, err)
}

func TestExecuteExit_InvalidDestination(t *testing.T) {
	clients, _ := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	// Upper 12 bytes nonzero: a channel destination, not an account address
	channelDestination := common.HexToHash("0xdeadbeef00000000000000000000000000000000000000000000000000000001")
	exit := business.Exit{
		testutil.NativeSingleAssetExit(business.Allocation{
			Destination:    channelDestination,
			Amount:         big.NewInt(1),
			AllocationType: business.AllocationTypeSimple,
			Metadata:       []byte{},
		}),
	}

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	assert.ErrorIs(t, err, services.ErrInvalidDestination)
}

func TestExecuteExit_ERC721(t *testing.T) {
	t.Run("transfers the token from the asset holder", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.ERC721SingleAssetExit(t, nftAddress, 42, testutil.SimpleAllocation(aliceAddress, 1)),
		}

		mockClients.ERC721.EXPECT().
			SafeTransferFrom(gomock.Any(), nftAddress, holderAddress, aliceAddress, big.NewInt(42)).
			Return(nil)

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		require.NoError(t, err)
	})

	t.Run("rejects an amount other than one without transferring", func(t *testing.T) {
		clients, _ := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.ERC721SingleAssetExit(t, nftAddress, 42, testutil.SimpleAllocation(aliceAddress, 2)),
		}

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})

	t.Run("wraps a client failure as a transfer failure", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.ERC721SingleAssetExit(t, nftAddress, 42, testutil.SimpleAllocation(aliceAddress, 1)),
		}

		mockClients.ERC721.EXPECT().
			SafeTransferFrom(gomock.Any(), nftAddress, holderAddress, aliceAddress, big.NewInt(42)).
			Return(errors.New("reverted"))

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrTransferFailed)
	})
}

func TestExecuteExit_ERC1155OrderingAcrossSingleAssetExits(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	// Two single-asset exits for the same contract with distinct token ids
	// must settle in declared order
	exit := business.Exit{
		testutil.ERC1155SingleAssetExit(t, nftAddress, 7, testutil.SimpleAllocation(aliceAddress, 3)),
		testutil.ERC1155SingleAssetExit(t, nftAddress, 9, testutil.SimpleAllocation(bobAddress, 5)),
	}

	gomock.InOrder(
		mockClients.ERC1155.EXPECT().
			SafeTransferFrom(gomock.Any(), nftAddress, holderAddress, aliceAddress, big.NewInt(7), big.NewInt(3), []byte{}).
			Return(nil),
		mockClients.ERC1155.EXPECT().
			SafeTransferFrom(gomock.Any(), nftAddress, holderAddress, bobAddress, big.NewInt(9), big.NewInt(5), []byte{}).
			Return(nil),
	)

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	require.NoError(t, err)
}

func TestExecuteExit_QualifiedAssets(t *testing.T) {
	t.Run("skips a single asset exit for another chain", func(t *testing.T) {
		clients, _ := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.QualifiedNativeSingleAssetExit(t, 137, holderAddress, testutil.SimpleAllocation(aliceAddress, 100)),
		}

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		require.NoError(t, err)
	})

	t.Run("skips a single asset exit for another asset holder", func(t *testing.T) {
		clients, _ := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.QualifiedNativeSingleAssetExit(t, 1, helperAddress, testutil.SimpleAllocation(aliceAddress, 100)),
		}

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		require.NoError(t, err)
	})

	t.Run("settles a matching qualified exit as a native payout", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.QualifiedNativeSingleAssetExit(t, 1, holderAddress, testutil.SimpleAllocation(aliceAddress, 100)),
		}

		mockClients.Native.EXPECT().Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).Return(nil)

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		require.NoError(t, err)
	})
}

func TestExecuteExit_WithdrawHelper(t *testing.T) {
	callData := []byte{0xab, 0xcd}

	t.Run("invokes the helper after the transfer", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.NativeSingleAssetExit(
				testutil.WithdrawHelperAllocation(t, aliceAddress, 100, helperAddress, callData),
			),
		}

		gomock.InOrder(
			mockClients.Native.EXPECT().Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).Return(nil),
			mockClients.WithdrawHelper.EXPECT().Execute(gomock.Any(), helperAddress, callData, big.NewInt(100)).Return(nil),
		)

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		require.NoError(t, err)
	})

	t.Run("propagates a helper failure", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.NativeSingleAssetExit(
				testutil.WithdrawHelperAllocation(t, aliceAddress, 100, helperAddress, callData),
			),
		}

		mockClients.Native.EXPECT().Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).Return(nil)
		mockClients.WithdrawHelper.EXPECT().
			Execute(gomock.Any(), helperAddress, callData, big.NewInt(100)).
			Return(errors.New("helper reverted"))

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrHelperFailed)
	})

	t.Run("does not invoke the helper when the transfer fails", func(t *testing.T) {
		clients, mockClients := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			testutil.NativeSingleAssetExit(
				testutil.WithdrawHelperAllocation(t, aliceAddress, 100, helperAddress, callData),
			),
		}

		mockClients.Native.EXPECT().
			Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).
			Return(errors.New("insufficient balance"))

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrTransferFailed)
	})
}

func TestExecuteExit_SkipsGuaranteeAllocations(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	guaranteeTarget := common.HexToHash("0xdeadbeef00000000000000000000000000000000000000000000000000000001")
	exit := business.Exit{
		testutil.NativeSingleAssetExit(
			testutil.GuaranteeAllocation(guaranteeTarget, 777),
			testutil.SimpleAllocation(bobAddress, 50),
		),
	}

	mockClients.Native.EXPECT().Transfer(gomock.Any(), bobAddress, big.NewInt(50)).Return(nil)

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	require.NoError(t, err)
}

func TestExecuteExit_UnsupportedAsset(t *testing.T) {
	t.Run("unknown asset type fails closed", func(t *testing.T) {
		clients, _ := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		exit := business.Exit{
			{
				Asset:         usdcAddress,
				AssetMetadata: business.AssetMetadata{AssetType: business.AssetType(9), Metadata: []byte{}},
				Allocations:   []business.Allocation{testutil.SimpleAllocation(aliceAddress, 1)},
			},
		}

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrUnsupportedAsset)
	})

	t.Run("qualified asset with a nonzero asset field fails closed", func(t *testing.T) {
		clients, _ := mocks.NewMockAssetClientsForTest(t)
		service := services.NewSettlementService(clients)

		qualified := testutil.QualifiedNativeSingleAssetExit(t, 1, holderAddress, testutil.SimpleAllocation(aliceAddress, 1))
		qualified.Asset = usdcAddress
		exit := business.Exit{qualified}

		err := service.ExecuteExit(context.Background(), testChain(), exit)
		assert.ErrorIs(t, err, services.ErrUnsupportedAsset)
	})
}

func TestExecuteExit_StopsAtFirstFailure(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	exit := business.Exit{
		testutil.NativeSingleAssetExit(testutil.SimpleAllocation(aliceAddress, 100)),
		testutil.ERC20SingleAssetExit(usdcAddress, testutil.SimpleAllocation(bobAddress, 200)),
	}

	// The second single-asset exit must never be dispatched
	mockClients.Native.EXPECT().
		Transfer(gomock.Any(), aliceAddress, big.NewInt(100)).
		Return(errors.New("insufficient balance"))

	err := service.ExecuteExit(context.Background(), testChain(), exit)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrTransferFailed)
	assert.Contains(t, err.Error(), "single asset exit 0")
}

func TestExecuteSingleAssetExit(t *testing.T) {
	clients, mockClients := mocks.NewMockAssetClientsForTest(t)
	service := services.NewSettlementService(clients)

	singleAssetExit := testutil.ERC20SingleAssetExit(usdcAddress, testutil.SimpleAllocation(aliceAddress, 500))

	mockClients.ERC20.EXPECT().
		Transfer(gomock.Any(), usdcAddress, aliceAddress, big.NewInt(500)).
		Return(nil)

	err := service.ExecuteSingleAssetExit(context.Background(), testChain(), singleAssetExit)
	require.NoError(t, err)
}
