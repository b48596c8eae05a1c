package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var idCounter atomic.Uint32

// NewServiceID returns a process-wide-unique service identifier. The counter
// guarantees uniqueness within one run; the millisecond timestamp makes
// collisions across runs and concurrent sessions vanishingly unlikely.
func NewServiceID() string {
	n := idCounter.Add(1) - 1
	ms := time.Now().UnixMilli()
	if ms <= 0 {
		// Clock is unusable; a random salt stands in for the timestamp.
		var salt [6]byte
		_, _ = rand.Read(salt[:])
		return fmt.Sprintf("service_%s_%d", hex.EncodeToString(salt[:]), n)
	}
	return fmt.Sprintf("service_%d_%d", ms, n)
}
