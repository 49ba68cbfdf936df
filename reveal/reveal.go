// Package reveal defers a region's entrance transition until the region is
// scrolled into view, then flips it to revealed exactly once.
package reveal

import (
	"sync"
)

// DefaultThreshold is the visible fraction of a region that counts as
// having entered the viewport.
const DefaultThreshold = 0.2

// State is a region's presentation state.
type State int

const (
	// Hidden is the initial state of every mounted controller.
	Hidden State = iota
	// Revealed is terminal.
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "hidden"
}

// Region identifies an observed render target, usually the element id of a
// section's root container.
type Region string

// Entry is a single visibility observation for a region.
type Entry struct {
	Region Region
	// Ratio is the visible fraction of the region, 0..1.
	Ratio float64
}

// Observer is the host's viewport observation primitive.
//
// Observe registers fn for observations of region. Implementations are
// expected to deliver an initial observation on registration. Unobserve
// stops deliveries for one region and leaves other registrations on the
// same observer alone. Disconnect stops all deliveries.
type Observer interface {
	Observe(region Region, threshold float64, fn func(Entry))
	Unobserve(region Region)
	Disconnect()
}

// Controller holds the reveal state of one mounted section.
type Controller struct {
	region    Region
	threshold float64
	observer  Observer

	mu       sync.Mutex
	state    State
	released bool
	revealed chan struct{}
}

// Attach mounts a controller for region and registers it with obs. A
// threshold outside (0, 1] falls back to DefaultThreshold.
func Attach(obs Observer, region Region, threshold float64) *Controller {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	c := &Controller{
		region:    region,
		threshold: threshold,
		observer:  obs,
		revealed:  make(chan struct{}),
	}
	obs.Observe(region, threshold, c.observe)
	return c
}

// Region returns the observed region.
func (c *Controller) Region() Region { return c.region }

// Threshold returns the effective visibility threshold.
func (c *Controller) Threshold() float64 { return c.threshold }

// State returns the current presentation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Revealed returns a channel closed on the hidden to revealed transition.
// It is never closed if the region never enters the viewport.
func (c *Controller) Revealed() <-chan struct{} {
	return c.revealed
}

// Release deregisters the controller's region from its observer. Only the
// first call has an effect. An observer shared with other controllers keeps
// serving them.
func (c *Controller) Release() {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return
	}
	c.released = true
	c.mu.Unlock()

	c.observer.Unobserve(c.region)
}

func (c *Controller) observe(e Entry) {
	if e.Region != c.region {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released || c.state == Revealed {
		return
	}
	if e.Ratio < c.threshold {
		return
	}
	c.state = Revealed
	close(c.revealed)
}
