package cash

import (
	"sort"

	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/errors"
)

// Validate requires all coins valid, unique tickers in ascending order
// and no zero amounts.
func (s *Set) Validate() error {
	last := ""
	for _, c := range s.Coins {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero %s entry", c.Ticker)
		}
		if c.Ticker <= last {
			return errors.Wrapf(errors.ErrModel, "coins not sorted: %s", c.Ticker)
		}
		last = c.Ticker
	}
	return nil
}

// Copy makes a new set with the same coins
func (s *Set) Copy() *Set {
	cpy := make([]*coin.Coin, len(s.Coins))
	for i, c := range s.Coins {
		cpy[i] = c.Clone()
	}
	return &Set{Coins: cpy}
}

// Amount returns the amount held for a ticker, zero if absent.
func (s *Set) Amount(ticker string) uint64 {
	for _, c := range s.Coins {
		if c.Ticker == ticker {
			return c.Amount
		}
	}
	return 0
}

// Add merges one coin into the set, keeping it sorted. Zero amounts are
// ignored.
func (s *Set) Add(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	for _, have := range s.Coins {
		if have.Ticker == c.Ticker {
			sum, err := (*have).Add(c)
			if err != nil {
				return err
			}
			have.Amount = sum.Amount
			return nil
		}
	}
	s.Coins = append(s.Coins, c.Clone())
	sort.Slice(s.Coins, func(i, j int) bool {
		return s.Coins[i].Ticker < s.Coins[j].Ticker
	})
	return nil
}

// Subtract removes one coin from the set. It fails with ErrAmount when
// the set does not hold enough. Entries drained to zero are dropped.
func (s *Set) Subtract(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	for i, have := range s.Coins {
		if have.Ticker != c.Ticker {
			continue
		}
		diff, err := (*have).Subtract(c)
		if err != nil {
			return err
		}
		if diff.IsZero() {
			s.Coins = append(s.Coins[:i], s.Coins[i+1:]...)
		} else {
			have.Amount = diff.Amount
		}
		return nil
	}
	return errors.Wrapf(errors.ErrAmount, "no %s balance", c.Ticker)
}
