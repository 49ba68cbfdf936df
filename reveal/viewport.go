package reveal

import (
	"sync"
)

// Viewport is an in-process observation host. It tracks the vertical
// geometry of placed regions and a scroll offset, and feeds intersection
// ratios to the observers created from it.
type Viewport struct {
	mu        sync.Mutex
	height    float64
	scrollY   float64
	regions   map[Region]box
	observers map[*ViewportObserver]struct{}
}

type box struct {
	top    float64
	height float64
}

// NewViewport returns a viewport of the given height scrolled to the top.
func NewViewport(height float64) *Viewport {
	return &Viewport{
		height:    height,
		regions:   make(map[Region]box),
		observers: make(map[*ViewportObserver]struct{}),
	}
}

// Place sets the document offset and height of a region.
func (v *Viewport) Place(region Region, top, height float64) {
	v.mu.Lock()
	v.regions[region] = box{top: top, height: height}
	v.mu.Unlock()
	v.notify()
}

// ScrollTo moves the viewport's top edge to y and notifies observers.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.scrollY = y
	v.mu.Unlock()
	v.notify()
}

// Ratio reports the visible fraction of region at the current scroll offset.
// Unplaced regions are not visible.
func (v *Viewport) Ratio(region Region) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ratioLocked(region)
}

func (v *Viewport) ratioLocked(region Region) float64 {
	b, ok := v.regions[region]
	if !ok || b.height <= 0 {
		return 0
	}
	top := max(b.top, v.scrollY)
	bottom := min(b.top+b.height, v.scrollY+v.height)
	if bottom <= top {
		return 0
	}
	return min((bottom-top)/b.height, 1)
}

// NewObserver returns an Observer bound to this viewport.
func (v *Viewport) NewObserver() *ViewportObserver {
	o := &ViewportObserver{
		viewport:   v,
		targets:    make(map[Region]target),
		unobserved: make(map[Region]int),
	}
	v.mu.Lock()
	v.observers[o] = struct{}{}
	v.mu.Unlock()
	return o
}

func (v *Viewport) notify() {
	v.mu.Lock()
	observers := make([]*ViewportObserver, 0, len(v.observers))
	for o := range v.observers {
		observers = append(observers, o)
	}
	v.mu.Unlock()

	for _, o := range observers {
		o.poll()
	}
}

// ViewportObserver implements Observer against a Viewport. Like the browser
// primitive, it delivers an initial entry on Observe and afterwards only
// when a region's ratio changes.
type ViewportObserver struct {
	viewport *Viewport

	mu         sync.Mutex
	targets    map[Region]target
	unobserved map[Region]int
}

type target struct {
	fn   func(Entry)
	last float64
}

var _ Observer = (*ViewportObserver)(nil)

// Observe registers fn and delivers the region's current ratio to it.
func (o *ViewportObserver) Observe(region Region, _ float64, fn func(Entry)) {
	ratio := o.viewport.Ratio(region)
	o.mu.Lock()
	o.targets[region] = target{fn: fn, last: ratio}
	o.mu.Unlock()
	fn(Entry{Region: region, Ratio: ratio})
}

// Unobserve drops the registration for region only.
func (o *ViewportObserver) Unobserve(region Region) {
	o.mu.Lock()
	delete(o.targets, region)
	o.unobserved[region]++
	o.mu.Unlock()
}

// Disconnect drops every registration and detaches from the viewport.
func (o *ViewportObserver) Disconnect() {
	o.mu.Lock()
	for region := range o.targets {
		o.unobserved[region]++
	}
	o.targets = make(map[Region]target)
	o.mu.Unlock()

	o.viewport.mu.Lock()
	delete(o.viewport.observers, o)
	o.viewport.mu.Unlock()
}

// Unobserved reports how many times region was deregistered.
func (o *ViewportObserver) Unobserved(region Region) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unobserved[region]
}

func (o *ViewportObserver) poll() {
	var due []func()
	o.mu.Lock()
	for region, t := range o.targets {
		ratio := o.viewport.Ratio(region)
		if ratio == t.last {
			continue
		}
		t.last = ratio
		o.targets[region] = t
		fn, e := t.fn, Entry{Region: region, Ratio: ratio}
		due = append(due, func() { fn(e) })
	}
	o.mu.Unlock()

	for _, call := range due {
		call()
	}
}
