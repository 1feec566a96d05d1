package diag

import (
	"golang.org/x/exp/slices"
)

// Collector keeps every message in memory.
type Collector struct {
	budget

	msgs []string
}

// NewCollector returns a Collector that stops after limit messages.
func NewCollector(limit int) *Collector {
	return &Collector{budget: budget{limit: limit}}
}

func (c *Collector) Report(msg string) bool {
	c.msgs = append(c.msgs, msg)
	return c.spend()
}

// Messages returns a copy of the reported messages.
func (c *Collector) Messages() []string {
	return slices.Clone(c.msgs)
}

// Reset forgets all reported messages.
func (c *Collector) Reset() {
	c.msgs = nil
	c.count = 0
}

type discard struct {
	budget
}

// Discard returns a Sink that drops messages but still counts them.
func Discard(limit int) Sink {
	return &discard{budget: budget{limit: limit}}
}

func (d *discard) Report(string) bool {
	return d.spend()
}
