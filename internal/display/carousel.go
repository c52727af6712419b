// Package display holds timer-driven view state that is derived, never persisted.
package display

import (
	"context"
	"errors"
	"sync"
	"time"
)

const DefaultCarouselInterval = 5 * time.Second

type Mode int

const (
	// ModeAuto advances on every tick.
	ModeAuto Mode = iota
	// ModeManual is terminal: once a viewer navigates, auto-advance never resumes.
	ModeManual
)

func (m Mode) String() string {
	if m == ModeManual {
		return "manual"
	}
	return "auto"
}

var ErrSlideOutOfRange = errors.New("slide index out of range")

// Carousel rotates through size slides. Safe for concurrent use.
type Carousel struct {
	mu    sync.Mutex
	size  int
	index int
	mode  Mode
}

func NewCarousel(size int) *Carousel {
	if size < 0 {
		size = 0
	}
	return &Carousel{size: size}
}

type CarouselState struct {
	Index int    `json:"index"`
	Size  int    `json:"size"`
	Mode  string `json:"mode"`
}

func (c *Carousel) State() CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CarouselState{Index: c.index, Size: c.size, Mode: c.mode.String()}
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Tick advances one slide in auto mode and reports whether it did.
func (c *Carousel) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeAuto || c.size == 0 {
		return false
	}
	c.index = (c.index + 1) % c.size
	return true
}

func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeManual
	if c.size > 0 {
		c.index = (c.index + 1) % c.size
	}
}

func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeManual
	if c.size > 0 {
		c.index = (c.index - 1 + c.size) % c.size
	}
}

func (c *Carousel) Select(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.size {
		return ErrSlideOutOfRange
	}
	c.mode = ModeManual
	c.index = index
	return nil
}

// Run ticks every period until ctx is done. It also returns once the carousel
// has latched to manual, since no further tick can have an effect.
func (c *Carousel) Run(ctx context.Context, period time.Duration) {
	if period <= 0 {
		period = DefaultCarouselInterval
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Mode() == ModeManual {
				return
			}
			c.Tick()
		}
	}
}
