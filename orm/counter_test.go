package orm

import (
	"encoding/binary"

	"github.com/dappr-network/dappr/errors"
)

// Counter is a test model with a single numeric field.
type Counter struct {
	Count int64
}

var _ Model = (*Counter)(nil)

func (c *Counter) Marshal() ([]byte, error) {
	data := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(data, c.Count)
	return data[:n], nil
}

func (c *Counter) Unmarshal(data []byte) error {
	count, n := binary.Varint(data)
	if n <= 0 {
		return errors.Wrap(errors.ErrState, "malformed counter")
	}
	c.Count = count
	return nil
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "count cannot be negative")
	}
	return nil
}

func (c *Counter) Copy() CloneableData {
	return &Counter{Count: c.Count}
}
