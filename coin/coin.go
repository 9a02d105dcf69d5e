/*
Package coin implements a single-denomination unsigned token amount.

Escrow accounting never deals with negative balances or fractional units,
so a Coin is a ticker plus a uint64 amount. Arithmetic is checked and
returns ErrOverflow rather than wrapping around.
*/
package coin

import (
	"fmt"
	"regexp"

	"github.com/dappr-network/dappr/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

func (c *Coin) String() string { return fmt.Sprintf("%d %s", c.Amount, c.Ticker) }

// NewCoin creates a new coin object
func NewCoin(amount uint64, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount uint64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two amounts of the same currency. It returns ErrOverflow
// when the sum does not fit in uint64 and ErrCurrency on a ticker
// mismatch.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}
	sum := c.Amount + o.Amount
	if sum < c.Amount {
		return Coin{}, errors.Wrap(errors.ErrOverflow, "amount sum")
	}
	return Coin{Ticker: c.Ticker, Amount: sum}, nil
}

// Subtract removes an amount of the same currency. It returns ErrAmount
// when the result would be negative.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "subtracting %s from %s", o.Ticker, c.Ticker)
	}
	if o.Amount > c.Amount {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "cannot take %d from %d", o.Amount, c.Amount)
	}
	return Coin{Ticker: c.Ticker, Amount: c.Amount - o.Amount}, nil
}

// SameType returns true if both coins use the same ticker.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// IsZero returns true amount is 0
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the amount is greater than 0.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// Equals returns true if all fields are identical
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{Ticker: c.Ticker, Amount: c.Amount}
}

// Validate ensures the coin has a well-formed ticker.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	return nil
}
