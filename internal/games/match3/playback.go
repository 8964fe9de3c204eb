package match3

import engine "github.com/vovakirdan/tui-match3/internal/match3"

// playback replays a resolved cascade one frame at a time. Each pass shows
// two frames: the board with holes, then the board after the fall.
type playback struct {
	frames   [][][]int
	frame    int
	ticks    int
	perFrame int
}

func newPlayback(c engine.Cascade, passTicks int) playback {
	if passTicks <= 0 {
		return playback{}
	}
	perFrame := passTicks / 2
	if perFrame < 1 {
		perFrame = 1
	}
	frames := make([][][]int, 0, len(c.Passes)*2)
	for _, p := range c.Passes {
		frames = append(frames, p.Removed, p.Settled)
	}
	return playback{frames: frames, perFrame: perFrame}
}

func (p *playback) active() bool {
	return p.frame < len(p.frames)
}

// current returns the grid to draw, or nil when nothing is playing.
func (p *playback) current() [][]int {
	if !p.active() {
		return nil
	}
	return p.frames[p.frame]
}

// advance moves playback forward one tick and reports whether it is still running.
func (p *playback) advance() bool {
	if !p.active() {
		return false
	}
	p.ticks++
	if p.ticks >= p.perFrame {
		p.ticks = 0
		p.frame++
	}
	return p.active()
}
