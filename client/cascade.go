package client

import (
	"context"
	"sync"
)

// OptionFetcher loads the options of one selector level given the selected
// value of its parent level. The root level receives parentID 0.
type OptionFetcher func(ctx context.Context, parentID uint) ([]Option, error)

// Link describes one level of a cascading selector chain.
type Link struct {
	// Name identifies the level, e.g. "channel", "subChannel", "region"
	Name string
	// Fetch loads the level's options for a parent selection
	Fetch OptionFetcher
}

type linkState struct {
	link       Link
	options    []Option
	selected   *uint
	generation uint64
}

// Chain coordinates a sequence of dependent selectors. Changing a selection
// synchronously clears every dependent level, then reloads the immediate
// child's options in the background. Responses from superseded fetches are
// discarded so a slow earlier request can never overwrite a newer one.
type Chain struct {
	mu    sync.Mutex
	links []*linkState

	// OnOptions is called after a level's options change (loaded or cleared)
	OnOptions func(level string, options []Option)
	// OnError is called with a user-facing message when a fetch fails
	OnError func(level string, message string)
}

// NewChain builds a chain from root to leaf.
func NewChain(links ...Link) *Chain {
	c := &Chain{}
	for _, l := range links {
		c.links = append(c.links, &linkState{link: l, options: []Option{}})
	}
	return c
}

// Load fetches the root level's options.
func (c *Chain) Load(ctx context.Context) {
	c.mu.Lock()
	if len(c.links) == 0 {
		c.mu.Unlock()
		return
	}
	root := c.links[0]
	root.generation++
	gen := root.generation
	fetch := root.link.Fetch
	c.mu.Unlock()

	go c.fetchInto(ctx, 0, gen, fetch, 0)
}

// Select records a selection at the given level. Descendant selections and
// options are cleared synchronously; when value is non-nil the immediate
// child's options are reloaded asynchronously.
func (c *Chain) Select(ctx context.Context, level string, value *uint) {
	c.mu.Lock()
	idx := c.indexOf(level)
	if idx < 0 {
		c.mu.Unlock()
		return
	}

	c.links[idx].selected = value

	// Everything downstream is invalid the moment the ancestor changes.
	cleared := make([]string, 0, len(c.links))
	for i := idx + 1; i < len(c.links); i++ {
		c.links[i].selected = nil
		c.links[i].options = []Option{}
		c.links[i].generation++ // orphan any in-flight fetch
		cleared = append(cleared, c.links[i].link.Name)
	}

	var fetch OptionFetcher
	var gen uint64
	childIdx := idx + 1
	if value != nil && childIdx < len(c.links) {
		fetch = c.links[childIdx].link.Fetch
		gen = c.links[childIdx].generation
	}
	c.mu.Unlock()

	if c.OnOptions != nil {
		for _, name := range cleared {
			c.OnOptions(name, []Option{})
		}
	}

	if fetch != nil {
		go c.fetchInto(ctx, childIdx, gen, fetch, *value)
	}
}

// fetchInto runs one background option load and applies the result only if
// the level's generation has not moved on in the meantime.
func (c *Chain) fetchInto(ctx context.Context, idx int, gen uint64, fetch OptionFetcher, parentID uint) {
	options, err := fetch(ctx, parentID)

	c.mu.Lock()
	state := c.links[idx]
	if state.generation != gen {
		c.mu.Unlock()
		return // superseded
	}
	if err != nil {
		state.options = []Option{}
	} else {
		if options == nil {
			options = []Option{}
		}
		state.options = options
	}
	name := state.link.Name
	applied := state.options
	c.mu.Unlock()

	if err != nil {
		if c.OnError != nil {
			c.OnError(name, err.Error())
		}
		if c.OnOptions != nil {
			c.OnOptions(name, []Option{})
		}
		return
	}
	if c.OnOptions != nil {
		c.OnOptions(name, applied)
	}
}

// Options returns the current options of a level.
func (c *Chain) Options(level string) []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOf(level); idx >= 0 {
		out := make([]Option, len(c.links[idx].options))
		copy(out, c.links[idx].options)
		return out
	}
	return nil
}

// Selection returns the current selection of a level, nil when unselected.
func (c *Chain) Selection(level string) *uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOf(level); idx >= 0 {
		return c.links[idx].selected
	}
	return nil
}

// Selections returns the selected value of every level keyed by level name.
func (c *Chain) Selections() map[string]*uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]*uint, len(c.links))
	for _, l := range c.links {
		out[l.link.Name] = l.selected
	}
	return out
}

// caller must hold c.mu
func (c *Chain) indexOf(level string) int {
	for i, l := range c.links {
		if l.link.Name == level {
			return i
		}
	}
	return -1
}
