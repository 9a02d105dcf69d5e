package x

import (
	"context"
	"testing"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/dapprtest/assert"
)

func TestMainSigner(t *testing.T) {
	a := dapprtest.NewCondition()
	b := dapprtest.NewCondition()

	cases := map[string]struct {
		auth Authenticator
		want dappr.Condition
	}{
		"no signers": {
			auth: &dapprtest.Auth{},
			want: nil,
		},
		"single signer": {
			auth: &dapprtest.Auth{Signers: []dappr.Condition{a}},
			want: a,
		},
		"first signer wins": {
			auth: &dapprtest.Auth{Signers: []dappr.Condition{b, a}},
			want: b,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := MainSigner(context.Background(), tc.auth)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChainAuth(t *testing.T) {
	a := dapprtest.NewCondition()
	b := dapprtest.NewCondition()

	auth := ChainAuth(
		&dapprtest.Auth{Signers: []dappr.Condition{a}},
		&dapprtest.Auth{Signers: []dappr.Condition{b}},
	)

	ctx := context.Background()
	assert.Equal(t, 2, len(auth.GetConditions(ctx)))
	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, true, auth.HasAddress(ctx, b.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, dapprtest.NewCondition().Address()))

	assert.Equal(t, true, HasAllAddresses(ctx, auth, []dappr.Address{a.Address(), b.Address()}))
	assert.Equal(t, false, HasAllAddresses(ctx, auth, []dappr.Address{a.Address(), dapprtest.NewCondition().Address()}))
}

func TestGetAddresses(t *testing.T) {
	a := dapprtest.NewCondition()
	auth := &dapprtest.Auth{Signers: []dappr.Condition{a}}

	addrs := GetAddresses(context.Background(), auth)
	assert.Equal(t, 1, len(addrs))
	assert.Equal(t, a.Address(), addrs[0])
}
