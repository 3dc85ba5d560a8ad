package vitrine

import "time"

// debugStatsInterval is how many frames frame stats accumulate before they
// are logged.
const debugStatsInterval = 60

// frameStats accumulates timing and draw metrics across frames.
// Only populated when the gallery is in debug mode.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
	objects    int
	render     RenderStats
}

func (s *frameStats) addUpdate(d time.Duration) {
	s.updateTime += d
}

// addDraw records one drawn frame and reports whether the interval is full.
func (s *frameStats) addDraw(d time.Duration, objects int, render RenderStats) bool {
	s.frames++
	s.drawTime += d
	s.objects = objects
	s.render.DrawCalls += render.DrawCalls
	s.render.Triangles += render.Triangles
	s.render.Clipped += render.Clipped
	return s.frames >= debugStatsInterval
}

// flush logs per-frame averages and resets the counters.
func (s *frameStats) flush() {
	if s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	Logger().Debug("frame stats",
		"frames", s.frames,
		"update", s.updateTime/n,
		"draw", s.drawTime/n,
		"objects", s.objects,
		"drawCalls", s.render.DrawCalls/s.frames,
		"triangles", s.render.Triangles/s.frames,
		"clipped", s.render.Clipped/s.frames,
	)
	*s = frameStats{}
}

// debugMaxChildCount is the child count past which Group.Add warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n int) {
	if n > debugMaxChildCount {
		Logger().Warn("group child count exceeds threshold",
			"children", n, "threshold", debugMaxChildCount)
	}
}
