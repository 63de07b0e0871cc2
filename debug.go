package coverflow

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and pool metrics.
// Only populated when Carousel.debug is true.
type debugStats struct {
	layoutTime time.Duration
	orderTime  time.Duration
	poseTime   time.Duration
	submitTime time.Duration
	frameCount int
	pooled     int
	created    int
}

// debugf prints a single tagged line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[coverflow] "+format+"\n", args...)
}

// debugLog prints timing and pool stats to stderr.
func (c *Carousel) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	total := stats.layoutTime + stats.orderTime + stats.poseTime + stats.submitTime
	debugf("layout: %v | order: %v | pose: %v | submit: %v | total: %v",
		stats.layoutTime, stats.orderTime, stats.poseTime, stats.submitTime, total)
	debugf("frames: %d | pooled: %d | created: %d",
		stats.frameCount, stats.pooled, stats.created)
}

// debugCheckPoolGrowth warns when the pool keeps allocating frames, which
// means frames leak instead of being released.
const debugMaxFrames = 64

func debugCheckPoolGrowth(created int) {
	if created > debugMaxFrames {
		debugf("warning: %d frames created (threshold %d)", created, debugMaxFrames)
	}
}
