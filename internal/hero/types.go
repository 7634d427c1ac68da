// Package hero holds the hero list entries and ability profiles shown by the page.
package hero

import (
	"fmt"
	"sort"
)

// Summary is one entry of the hero list
type Summary struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
}

// Profile holds the ability scores of a single hero, keyed by ability name
type Profile map[string]int

// canonicalOrder is the order the remote API uses for the known abilities
var canonicalOrder = []string{"str", "int", "agi", "luk"}

// Clone returns an independent copy of the profile
func (p Profile) Clone() Profile {
	if p == nil {
		return nil
	}
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the profile holds no abilities
func (p Profile) IsEmpty() bool {
	return len(p) == 0
}

// Total returns the sum of all ability scores
func (p Profile) Total() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

// Abilities returns ability names in display order: the known abilities
// first, then any others alphabetically.
func (p Profile) Abilities() []string {
	names := make([]string, 0, len(p))
	seen := make(map[string]bool, len(canonicalOrder))
	for _, name := range canonicalOrder {
		if _, ok := p[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range p {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

// Adjust returns a copy of the profile with one ability moved by delta.
// Scores never go below zero and the total never exceeds budget.
func (p Profile) Adjust(name string, delta, budget int) (Profile, error) {
	current, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("unknown ability %q", name)
	}

	next := current + delta
	if next < 0 {
		return nil, fmt.Errorf("ability %q cannot go below zero", name)
	}
	if p.Total()+delta > budget {
		return nil, fmt.Errorf("no points remaining (budget %d)", budget)
	}

	out := p.Clone()
	out[name] = next
	return out, nil
}

// Remaining returns the unspent points against budget
func (p Profile) Remaining(budget int) int {
	return budget - p.Total()
}
