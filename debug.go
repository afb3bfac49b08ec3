package orbitshot

import (
	"fmt"
	"log"
	"os"
	"time"
)

// logger writes engine diagnostics to stderr.
var logger = log.New(os.Stderr, "[orbitshot] ", 0)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugLogInterval is how many frames pass between stats lines.
const debugLogInterval = 60

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	nodeCount  int
	drawCount  int
	tweenCount int
	timerCount int
}

// debugLog prints stats to stderr once every debugLogInterval frames.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.debugFrame++
	if s.debugFrame%debugLogInterval != 0 {
		return
	}
	logger.Printf("update: %v | draw: %v | nodes: %d | draws: %d | tweens: %d | timers: %d",
		stats.updateTime, stats.drawTime, stats.nodeCount, stats.drawCount,
		stats.tweenCount, stats.timerCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("orbitshot debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth beyond which AddChild warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Printf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}
