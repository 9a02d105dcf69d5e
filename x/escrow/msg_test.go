package escrow

import (
	"strings"
	"testing"

	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/dapprtest"
	"github.com/dappr-network/dappr/errors"
)

func TestInitializeMsgValidate(t *testing.T) {
	recipient := dapprtest.NewCondition().Address()

	cases := map[string]struct {
		msg     InitializeMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: InitializeMsg{Recipient: recipient, Ticker: "FUD", MilestonesCount: 3},
		},
		"single milestone": {
			msg: InitializeMsg{Recipient: recipient, Ticker: "FUD", MilestonesCount: 1},
		},
		"missing recipient": {
			msg:     InitializeMsg{Ticker: "FUD", MilestonesCount: 3},
			wantErr: errors.ErrEmpty,
		},
		"truncated recipient": {
			msg:     InitializeMsg{Recipient: recipient[:5], Ticker: "FUD", MilestonesCount: 3},
			wantErr: errors.ErrInput,
		},
		"missing ticker": {
			msg:     InitializeMsg{Recipient: recipient, MilestonesCount: 3},
			wantErr: errors.ErrEmpty,
		},
		"zero milestones": {
			msg:     InitializeMsg{Recipient: recipient, Ticker: "FUD"},
			wantErr: errors.ErrMsg,
		},
		"too many milestones": {
			msg:     InitializeMsg{Recipient: recipient, Ticker: "FUD", MilestonesCount: 256},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestAddMilestoneMsgValidate(t *testing.T) {
	escrowID := []byte("some-escrow-key")

	cases := map[string]struct {
		msg     AddMilestoneMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: AddMilestoneMsg{EscrowID: escrowID, Index: 0, Amount: 100, Deadline: 1700000000, Description: "design"},
		},
		"empty description is fine": {
			msg: AddMilestoneMsg{EscrowID: escrowID, Index: 1, Amount: 100, Deadline: 1700000000},
		},
		"missing escrow id": {
			msg:     AddMilestoneMsg{Amount: 100, Deadline: 1700000000},
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			msg:     AddMilestoneMsg{EscrowID: escrowID, Deadline: 1700000000},
			wantErr: errors.ErrMsg,
		},
		"zero deadline": {
			msg:     AddMilestoneMsg{EscrowID: escrowID, Amount: 100},
			wantErr: errors.ErrInput,
		},
		"description too long": {
			msg:     AddMilestoneMsg{EscrowID: escrowID, Amount: 100, Deadline: 1700000000, Description: strings.Repeat("x", 257)},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestFundMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     FundMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: FundMsg{EscrowID: []byte("key"), Amount: 600000},
		},
		"missing escrow id": {
			msg:     FundMsg{Amount: 600000},
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			msg:     FundMsg{EscrowID: []byte("key")},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestReleaseFundsMsgValidate(t *testing.T) {
	recipient := dapprtest.NewCondition().Address()

	cases := map[string]struct {
		msg     ReleaseFundsMsg
		wantErr *errors.Error
	}{
		"without destination": {
			msg: ReleaseFundsMsg{EscrowID: []byte("key"), Index: 2},
		},
		"with destination": {
			msg: ReleaseFundsMsg{EscrowID: []byte("key"), Index: 2, Destination: recipient},
		},
		"missing escrow id": {
			msg:     ReleaseFundsMsg{Index: 2},
			wantErr: errors.ErrEmpty,
		},
		"malformed destination": {
			msg:     ReleaseFundsMsg{EscrowID: []byte("key"), Destination: dappr.Address{1, 2, 3}},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	paths := map[string]dappr.Msg{
		"escrow/initialize":         &InitializeMsg{},
		"escrow/add_milestone":      &AddMilestoneMsg{},
		"escrow/fund":               &FundMsg{},
		"escrow/complete_milestone": &CompleteMilestoneMsg{},
		"escrow/release_funds":      &ReleaseFundsMsg{},
	}
	for want, msg := range paths {
		if got := msg.Path(); got != want {
			t.Errorf("%T path: want %q, got %q", msg, want, got)
		}
	}
}
