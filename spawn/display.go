package spawn

import (
	"sync/atomic"

	"github.com/Boulangerie/starflow-shell/config"
)

// Depth is a nesting depth counter the host pushes before nested work and
// pops afterwards. It is safe for concurrent use.
type Depth struct {
	value atomic.Int64
}

// NewDepth returns a counter starting at the given depth.
func NewDepth(initial int) *Depth {
	d := &Depth{}
	d.value.Store(int64(initial))
	return d
}

// Depth returns the current depth.
func (d *Depth) Depth() int {
	return int(d.value.Load())
}

// Push increments the depth and returns a function restoring the previous level.
func (d *Depth) Push() (restore func()) {
	d.value.Add(1)
	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			d.value.Add(-1)
		}
	}
}

// canDisplay reports whether output may be echoed at the given depth.
// Output at exactly the depth limit is displayed.
func canDisplay(settings config.Settings, depth int) bool {
	return settings.DisplayOutput && settings.DepthLimit >= depth
}
