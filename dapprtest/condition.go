package dapprtest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/dappr-network/dappr"
)

var conditionCounter uint64

// NewCondition returns a new, unique condition. Each call returns a
// different value, so addresses derived from them never collide within
// a test run.
func NewCondition() dappr.Condition {
	n := atomic.AddUint64(&conditionCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return dappr.NewCondition("test", "seq", data)
}
