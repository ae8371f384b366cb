package embers

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// tickStats holds per-tick counters for a Storage.
// Only populated when Storage.debug is true.
type tickStats struct {
	time       float64
	expired    int
	spawned    int
	active     int
	expireTime time.Duration
	updateTime time.Duration
}

// debugLog prints tick stats to stderr.
func (s *Storage) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[embers] t=%.0fms | expired: %d | spawned: %d | active: %d\n",
		stats.time, stats.expired, stats.spawned, stats.active)
	_, _ = fmt.Fprintf(os.Stderr,
		"[embers] expire: %v | update: %v | total: %v\n",
		stats.expireTime, stats.updateTime, stats.expireTime+stats.updateTime)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("embers debug: %s on disposed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugMaxActive is the active-set size above which debug mode warns.
const debugMaxActive = 20000

func debugCheckActive(n int) {
	if n > debugMaxActive {
		_, _ = fmt.Fprintf(os.Stderr, "[embers] warning: %d active storables (threshold %d)\n",
			n, debugMaxActive)
	}
}
