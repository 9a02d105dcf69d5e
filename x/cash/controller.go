package cash

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/coin"
	"github.com/dappr-network/dappr/errors"
)

// Controller is the functionality needed by other extensions to move
// funds between accounts they control.
type Controller interface {
	MoveCoins(store dappr.KVStore, src, dest dappr.Address, amount coin.Coin) error
	IssueCoins(store dappr.KVStore, dest dappr.Address, amount coin.Coin) error
	Balance(store dappr.ReadOnlyKVStore, addr dappr.Address, ticker string) (uint64, error)
}

// BaseController implements Controller on top of a wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest. It fails when src
// does not exist or does not hold sufficient funds.
func (c BaseController) MoveCoins(store dappr.KVStore, src, dest dappr.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "same source and destination")
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "no account %s", src)
	}
	if err := sender.Coins().Subtract(amount); err != nil {
		return errors.Wrap(err, "sender balance")
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Coins().Add(amount); err != nil {
		return errors.Wrap(err, "recipient balance")
	}

	if err := c.bucket.Save(store, sender); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins mints the given amount into the destination wallet.
func (c BaseController) IssueCoins(store dappr.KVStore, dest dappr.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	if err := recipient.Coins().Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// Balance returns the amount of one ticker held at an address. A missing
// wallet is a zero balance.
func (c BaseController) Balance(store dappr.ReadOnlyKVStore, addr dappr.Address, ticker string) (uint64, error) {
	w, err := c.bucket.Get(store, addr)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, nil
	}
	return w.Coins().Amount(ticker), nil
}
