package multisig

import (
	"testing"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
)

func TestWithdrawalSerialization(t *testing.T) {
	signers := []dappr.Address{
		dapprtest.NewCondition().Address(),
		dapprtest.NewCondition().Address(),
		dapprtest.NewCondition().Address(),
	}

	w := Withdrawal{
		Escrow:    []byte("escrow-key"),
		Signers:   signers,
		Approvals: []bool{true, false, true},
		Threshold: 2,
		CreatedAt: dappr.UnixTime(1700000000),
		Executed:  true,
	}

	raw, err := w.Marshal()
	assert.Nil(t, err)

	var got Withdrawal
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, w, got)
}
