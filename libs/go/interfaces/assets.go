package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NativeAssetClient moves the chain's native currency out of the settlement
// context's holdings. A transfer either completes or returns an error; the
// engine never retries.
type NativeAssetClient interface {
	Transfer(ctx context.Context, destination common.Address, amount *big.Int) error
}

// ERC20Client invokes the fungible-transfer capability of a token contract
type ERC20Client interface {
	Transfer(ctx context.Context, token common.Address, destination common.Address, amount *big.Int) error
}

// ERC721Client invokes the single-item non-fungible transfer capability of a
// token contract. The transfer fails if from does not own the token or the
// destination cannot receive it.
type ERC721Client interface {
	SafeTransferFrom(ctx context.Context, token common.Address, from, to common.Address, tokenID *big.Int) error
}

// ERC1155Client invokes the multi-item transfer capability of a token
// contract. The data argument is passed through to the receiving contract
// uninterpreted.
type ERC1155Client interface {
	SafeTransferFrom(ctx context.Context, token common.Address, from, to common.Address, tokenID, amount *big.Int, data []byte) error
}

// WithdrawHelperClient invokes an external withdraw helper after a payout has
// succeeded, handing it the helper-specific call data and the paid amount
type WithdrawHelperClient interface {
	Execute(ctx context.Context, helper common.Address, callData []byte, amount *big.Int) error
}

// AssetClients bundles the transfer capabilities the settlement engine
// dispatches to per asset class
type AssetClients struct {
	Native         NativeAssetClient
	ERC20          ERC20Client
	ERC721         ERC721Client
	ERC1155        ERC1155Client
	WithdrawHelper WithdrawHelperClient
}
