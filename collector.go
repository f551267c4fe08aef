package main

import (
	"iter"

	"github.com/zhangyunhao116/skipset"
)

// orderedIntSet is the part of the skip-list set the collector relies on.
type orderedIntSet interface {
	Add(v int) bool
	Len() int
	Range(f func(v int) bool)
}

// intCollector accumulates integers with duplicates discarded and keeps them in
// ascending order. One collector is built per input file.
type intCollector struct {
	set orderedIntSet
}

func newIntCollector() *intCollector {
	return &intCollector{set: skipset.New[int]()}
}

// Add inserts v and reports whether it was not already present.
func (c *intCollector) Add(v int) bool {
	return c.set.Add(v)
}

// Len returns the number of distinct values collected.
func (c *intCollector) Len() int {
	return c.set.Len()
}

// All returns the collected values in ascending order. The sequence can be
// ranged over more than once.
func (c *intCollector) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		c.set.Range(func(v int) bool {
			return yield(v)
		})
	}
}
