package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cyphera/settlement-engine/libs/go/helpers"
	"github.com/cyphera/settlement-engine/libs/go/interfaces"
	"github.com/cyphera/settlement-engine/libs/go/logger"
	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettlementService executes exits: it walks every allocation of every
// single-asset exit strictly in declared order and dispatches one transfer
// (plus an optional withdraw-helper call) per payable allocation.
//
// The service performs no retries and no rollback. Any failure aborts the
// enclosing call and is propagated to the caller; all-or-nothing semantics
// are expected to come from an atomic host (or compensation logic) around
// this service, and the engine must not undermine that by swallowing a
// failure and continuing.
type SettlementService struct {
	logger  *zap.Logger
	clients interfaces.AssetClients
}

// NewSettlementService creates a settlement service backed by the given
// asset-transfer capabilities
func NewSettlementService(clients interfaces.AssetClients) *SettlementService {
	log := logger.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &SettlementService{
		logger:  log,
		clients: clients,
	}
}

// ExecuteExit settles every single-asset exit in order. Single-asset exits
// addressed to a different chain or asset holder are skipped silently; the
// first failure aborts the whole call.
func (s *SettlementService) ExecuteExit(ctx context.Context, chain business.ChainContext, exit business.Exit) error {
	log := s.logger.With(
		zap.String("settlement_id", uuid.New().String()),
		zap.Int("asset_count", len(exit)),
	)
	log.Info("executing exit")

	for i, singleAssetExit := range exit {
		if err := s.executeSingleAssetExit(ctx, log, chain, singleAssetExit); err != nil {
			return fmt.Errorf("single asset exit %d (asset %s): %w", i, singleAssetExit.Asset.Hex(), err)
		}
	}

	log.Info("exit executed")
	return nil
}

// ExecuteSingleAssetExit settles one asset's allocations. Callers settling a
// full exit should use ExecuteExit, which preserves cross-asset ordering.
func (s *SettlementService) ExecuteSingleAssetExit(ctx context.Context, chain business.ChainContext, singleAssetExit business.SingleAssetExit) error {
	log := s.logger.With(zap.String("settlement_id", uuid.New().String()))
	return s.executeSingleAssetExit(ctx, log, chain, singleAssetExit)
}

func (s *SettlementService) executeSingleAssetExit(ctx context.Context, log *zap.Logger, chain business.ChainContext, singleAssetExit business.SingleAssetExit) error {
	log = log.With(
		zap.String("asset", singleAssetExit.Asset.Hex()),
		zap.Uint8("asset_type", uint8(singleAssetExit.AssetMetadata.AssetType)),
	)

	foreign, err := helpers.IsForeignAsset(singleAssetExit, chain)
	if err != nil {
		return err
	}
	if foreign {
		// Expected outcome for multi-chain bundles, not a failure
		log.Debug("skipping foreign single asset exit")
		return nil
	}

	for i, allocation := range singleAssetExit.Allocations {
		if err := s.executeAllocation(ctx, log, chain, singleAssetExit, i, allocation); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettlementService) executeAllocation(ctx context.Context, log *zap.Logger, chain business.ChainContext, singleAssetExit business.SingleAssetExit, index int, allocation business.Allocation) error {
	if allocation.AllocationType == business.AllocationTypeGuarantee {
		// Guarantee lines are priority pointers for the upstream protocol,
		// not payouts; their destination is not an account address
		log.Debug("skipping guarantee allocation", zap.Int("allocation_index", index))
		return nil
	}

	if !helpers.IsExternalDestination(allocation.Destination) {
		return fmt.Errorf("allocation %d: %w", index, ErrInvalidDestination)
	}
	destination := helpers.DestinationToAddress(allocation.Destination)

	log.Debug("settling allocation",
		zap.Int("allocation_index", index),
		zap.String("destination", destination.Hex()),
		zap.String("amount", allocation.Amount.String()),
		zap.Uint8("allocation_type", uint8(allocation.AllocationType)),
	)

	if err := s.transfer(ctx, chain, singleAssetExit, index, allocation, destination); err != nil {
		return err
	}

	if allocation.AllocationType == business.AllocationTypeWithdrawHelper {
		if err := s.invokeWithdrawHelper(ctx, index, allocation); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettlementService) transfer(ctx context.Context, chain business.ChainContext, singleAssetExit business.SingleAssetExit, index int, allocation business.Allocation, destination common.Address) error {
	// The zero asset is the native currency. For Qualified assets the asset
	// field is ignored by convention and the payout is native as well.
	if singleAssetExit.Asset == (common.Address{}) {
		if err := s.clients.Native.Transfer(ctx, destination, allocation.Amount); err != nil {
			return fmt.Errorf("allocation %d: %w: %v", index, ErrTransferFailed, err)
		}
		return nil
	}

	switch singleAssetExit.AssetMetadata.AssetType {
	case business.AssetTypeDefault:
		if err := s.clients.ERC20.Transfer(ctx, singleAssetExit.Asset, destination, allocation.Amount); err != nil {
			return fmt.Errorf("allocation %d: %w: %v", index, ErrTransferFailed, err)
		}
		return nil

	case business.AssetTypeERC721:
		if allocation.Amount == nil || allocation.Amount.Cmp(big.NewInt(1)) != 0 {
			return fmt.Errorf("allocation %d: %w", index, ErrInvalidAmount)
		}
		tokenID, err := helpers.DecodeTokenID(singleAssetExit.AssetMetadata.Metadata)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", index, err)
		}
		if err := s.clients.ERC721.SafeTransferFrom(ctx, singleAssetExit.Asset, chain.AssetHolder, destination, tokenID); err != nil {
			return fmt.Errorf("allocation %d: %w: %v", index, ErrTransferFailed, err)
		}
		return nil

	case business.AssetTypeERC1155:
		tokenID, err := helpers.DecodeTokenID(singleAssetExit.AssetMetadata.Metadata)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", index, err)
		}
		// The allocation's own metadata rides along as auxiliary call data;
		// its use is protocol-defined and not interpreted here
		if err := s.clients.ERC1155.SafeTransferFrom(ctx, singleAssetExit.Asset, chain.AssetHolder, destination, tokenID, allocation.Amount, allocation.Metadata); err != nil {
			return fmt.Errorf("allocation %d: %w: %v", index, ErrTransferFailed, err)
		}
		return nil

	default:
		// A Qualified asset with a nonzero asset field reaching dispatch is
		// a design error; fail closed rather than guessing Default semantics
		return fmt.Errorf("allocation %d: %w: asset type %d", index, ErrUnsupportedAsset, singleAssetExit.AssetMetadata.AssetType)
	}
}

func (s *SettlementService) invokeWithdrawHelper(ctx context.Context, index int, allocation business.Allocation) error {
	metadata, err := helpers.DecodeWithdrawHelperMetadata(allocation.Metadata)
	if err != nil {
		return fmt.Errorf("allocation %d: %w", index, err)
	}

	if err := s.clients.WithdrawHelper.Execute(ctx, metadata.CallTarget, metadata.CallData, allocation.Amount); err != nil {
		return fmt.Errorf("allocation %d: %w: %v", index, ErrHelperFailed, err)
	}
	return nil
}
