package cash

import (
	"github.com/dappr-network/dappr"
	"github.com/dappr-network/dappr/errors"
	"github.com/dappr-network/dappr/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is a type-safe wrapper around orm.SimpleObj holding the coin
// set of one address.
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key dappr.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// Value gets the value stored in the object
func (w Wallet) Value() dappr.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy(),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Set points the wallet to a new set of coins
func (w *Wallet) Set(s *Set) {
	w.value = s
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() *Set {
	return w.value
}

// AsWallet safely extracts a Wallet value from an object
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return &Wallet{
		key:   obj.Key(),
		value: obj.Value().(*Set),
	}
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// Get returns the wallet at given address, or nil when absent.
func (b Bucket) Get(db dappr.ReadOnlyKVStore, key dappr.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return AsWallet(obj), nil
}

// GetOrCreate returns the wallet at given address, creating an empty one
// when absent.
func (b Bucket) GetOrCreate(db dappr.ReadOnlyKVStore, key dappr.Address) (*Wallet, error) {
	w, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = NewWallet(key)
	}
	return w, nil
}

// Save persists a wallet, dropping it entirely when empty.
func (b Bucket) Save(db dappr.KVStore, w *Wallet) error {
	if len(w.Coins().Coins) == 0 {
		return b.Bucket.Delete(db, w.Key())
	}
	return b.Bucket.Save(db, w)
}
