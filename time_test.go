package dappr

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dappr-network/dappr/dapprtest/assert"
)

func TestUnixTime(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ut := AsUnixTime(now)

	assert.Equal(t, now.UTC(), ut.Time().UTC())
	assert.Equal(t, false, ut.IsZero())
	assert.Equal(t, UnixTime(0).IsZero(), true)
	assert.Equal(t, ut+3600, ut.Add(time.Hour))
	// Sub-second durations are truncated.
	assert.Equal(t, ut, ut.Add(999*time.Millisecond))
}

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr bool
	}{
		"number": {
			raw:  `1700000000`,
			want: 1700000000,
		},
		"string time": {
			raw:  `"2023-11-14T22:13:20Z"`,
			want: 1700000000,
		},
		"garbage": {
			raw:     `"not a time"`,
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlockTime(t *testing.T) {
	if _, ok := BlockTime(context.Background()); ok {
		t.Fatal("an empty context must not carry a block time")
	}

	now := time.Unix(1700000000, 0)
	ctx := WithBlockTime(context.Background(), now)
	got, ok := BlockTime(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, now.UTC(), got)
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ctx := WithBlockTime(context.Background(), now)

	assert.Equal(t, true, IsExpired(ctx, AsUnixTime(now.Add(-time.Minute))))
	// The block time itself counts as expired.
	assert.Equal(t, true, IsExpired(ctx, AsUnixTime(now)))
	assert.Equal(t, false, IsExpired(ctx, AsUnixTime(now.Add(time.Minute))))

	assert.Panics(t, func() {
		IsExpired(context.Background(), AsUnixTime(now))
	})
}

func TestInTheFuture(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ctx := WithBlockTime(context.Background(), now)

	assert.Equal(t, true, InTheFuture(ctx, AsUnixTime(now.Add(time.Second))))
	assert.Equal(t, false, InTheFuture(ctx, AsUnixTime(now)))
	assert.Equal(t, false, InTheFuture(ctx, AsUnixTime(now.Add(-time.Second))))
}
