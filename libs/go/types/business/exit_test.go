package business_test

import (
	"math/big"
	"testing"

	"github.com/cyphera/settlement-engine/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func allocation(allocationType business.AllocationType, amount *big.Int) business.Allocation {
	return business.Allocation{
		Destination:    common.HexToHash("0x0000000000000000000000001111111111111111111111111111111111111111"),
		Amount:         amount,
		AllocationType: allocationType,
		Metadata:       []byte{},
	}
}

func TestSingleAssetExitTotals(t *testing.T) {
	tests := []struct {
		name          string
		allocations   []business.Allocation
		wantAllocated int64
		wantPayable   int64
	}{
		{
			name:          "no allocations",
			allocations:   nil,
			wantAllocated: 0,
			wantPayable:   0,
		},
		{
			name: "simple allocations only",
			allocations: []business.Allocation{
				allocation(business.AllocationTypeSimple, big.NewInt(100)),
				allocation(business.AllocationTypeSimple, big.NewInt(250)),
			},
			wantAllocated: 350,
			wantPayable:   350,
		},
		{
			name: "guarantee excluded from payable",
			allocations: []business.Allocation{
				allocation(business.AllocationTypeSimple, big.NewInt(100)),
				allocation(business.AllocationTypeGuarantee, big.NewInt(40)),
				allocation(business.AllocationTypeWithdrawHelper, big.NewInt(60)),
			},
			wantAllocated: 200,
			wantPayable:   160,
		},
		{
			name: "nil amounts count as zero",
			allocations: []business.Allocation{
				allocation(business.AllocationTypeSimple, nil),
				allocation(business.AllocationTypeSimple, big.NewInt(5)),
			},
			wantAllocated: 5,
			wantPayable:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exit := business.SingleAssetExit{Allocations: tt.allocations}
			assert.Equal(t, big.NewInt(tt.wantAllocated), exit.TotalAllocated())
			assert.Equal(t, big.NewInt(tt.wantPayable), exit.TotalPayable())
		})
	}
}
