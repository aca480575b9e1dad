package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ChainContext identifies the execution context a settlement runs in: the
// chain and the contract identity holding the assets being paid out. It is
// passed explicitly into every settlement entry point so the engine stays
// deterministic and testable without a live host.
type ChainContext struct {
	ChainID *big.Int `json:"chain_id"`
	// AssetHolder is the current contract's own identity; it is also the
	// "from" side of non-fungible transfers
	AssetHolder common.Address `json:"asset_holder"`
}
