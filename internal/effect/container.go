// Package effect implements the confetti celebration shown around the counter.
package effect

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultFrames   = 24
	DefaultInterval = 60 * time.Millisecond
	DefaultWidth    = 28
	DefaultHeight   = 4
	defaultDensity  = 18
)

var (
	glyphs  = []string{"*", "+", "•", "✦", "◆", "❋"}
	palette = []lipgloss.Color{"205", "86", "214", "39", "226", "196"}
)

// frameMsg advances the animation of one container.
type frameMsg struct {
	ElementID string
	Seq       int
}

type particle struct {
	x, y   float64
	dx, dy float64
	glyph  string
	color  lipgloss.Color
}

// Container wraps content and plays a confetti burst above it on request.
// It resets Popped itself once the animation has run, so it can be replayed.
type Container struct {
	ID       string
	Popped   bool
	Frames   int
	Interval time.Duration
	Width    int
	Height   int

	frame     int
	seq       int
	particles []particle
	rng       *rand.Rand
}

// NewContainer creates a container with default sizing.
func NewContainer(id string) *Container {
	return &Container{
		ID:       id,
		Frames:   DefaultFrames,
		Interval: DefaultInterval,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x636f756e74)),
	}
}

// WithRand replaces the particle source, mainly for tests.
func (c *Container) WithRand(r *rand.Rand) *Container {
	c.rng = r
	return c
}

// Init implements the View contract; the container is idle until popped.
func (c *Container) Init() tea.Cmd { return nil }

// Update handles PopMsg and its own frame ticks.
func (c *Container) Update(msg tea.Msg) (*Container, tea.Cmd) {
	switch msg := msg.(type) {
	case PopMsg:
		if msg.ElementID != c.ID {
			return c, nil
		}
		c.pop()
		return c, c.tick()
	case frameMsg:
		// Ticks from an earlier burst are stale once a new one started.
		if msg.ElementID != c.ID || msg.Seq != c.seq || !c.Popped {
			return c, nil
		}
		c.frame++
		if c.frame >= c.Frames {
			c.Popped = false
			c.particles = nil
			return c, nil
		}
		c.step()
		return c, c.tick()
	}
	return c, nil
}

// View renders the particle band (blank when idle) on top of content.
func (c *Container) View(content string) string {
	return lipgloss.JoinVertical(lipgloss.Center, c.field(), content)
}

func (c *Container) pop() {
	c.Popped = true
	c.frame = 0
	c.seq++
	c.particles = c.particles[:0]
	for range defaultDensity {
		c.particles = append(c.particles, particle{
			x:     float64(c.Width) / 2,
			y:     float64(c.Height - 1),
			dx:    (c.rng.Float64() - 0.5) * 3,
			dy:    -c.rng.Float64() * 1.2,
			glyph: glyphs[c.rng.IntN(len(glyphs))],
			color: palette[c.rng.IntN(len(palette))],
		})
	}
}

// step moves every particle one frame under a little gravity.
func (c *Container) step() {
	for i := range c.particles {
		p := &c.particles[i]
		p.x += p.dx
		p.y += p.dy
		p.dy += 0.25
	}
}

func (c *Container) tick() tea.Cmd {
	id, seq := c.ID, c.seq
	return tea.Tick(c.Interval, func(time.Time) tea.Msg {
		return frameMsg{ElementID: id, Seq: seq}
	})
}

func (c *Container) field() string {
	grid := make([][]string, c.Height)
	for y := range grid {
		grid[y] = make([]string, c.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	if c.Popped {
		for _, p := range c.particles {
			x, y := int(p.x), int(p.y)
			if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
				continue
			}
			grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(p.glyph)
		}
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
