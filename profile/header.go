package profile

import "golang.org/x/text/cases"

// headerFold is the ASCII case-insensitive comparison key for a header
// name. golang.org/x/text/cases.Fold is used rather than strings.ToLower
// so the key is produced the same way the rest of the text-handling
// stack in this module folds case.
var foldCaser = cases.Fold()

func headerFold(name string) string {
	return foldCaser.String(name)
}

// HeaderPair is a single (name, value) entry.
type HeaderPair struct {
	Name  string
	Value string
}

// HeaderProfile is the mandatory header set and wire ordering for one
// impersonated identity.
type HeaderProfile struct {
	// Defaults are inserted into the outgoing header map only where the
	// caller hasn't already supplied that name.
	Defaults []HeaderPair
	// Order is the total order on header names defining wire position;
	// a name with no value in the final map occupies no slot.
	Order []string

	frozen bool
}

func (p *HeaderProfile) Freeze() *HeaderProfile {
	cp := *p
	cp.Defaults = append([]HeaderPair(nil), p.Defaults...)
	cp.Order = append([]string(nil), p.Order...)
	cp.frozen = true
	return &cp
}

func (p *HeaderProfile) Frozen() bool { return p.frozen }

// orderedMapEntry preserves the caller's original casing and the
// position it was first inserted at, which matters for "rest" ordering.
type orderedMapEntry struct {
	name  string // as last written (caller's casing wins over defaults')
	value string
}

// Compose implements the composition algorithm: caller headers win
// over defaults for the same name; profile.Order-listed names are
// emitted first in that order; everything else follows in the caller's
// original insertion order (with defaults appended after caller headers
// that didn't override them, in the order they were inserted into the
// map — i.e. caller headers first, then un-overridden defaults, in each
// group's own declaration order).
func (p *HeaderProfile) Compose(caller []HeaderPair) []HeaderPair {
	keyOf := make(map[string]string) // fold -> name as first inserted
	byFold := make(map[string]*orderedMapEntry)
	var insertionOrder []string // fold keys, in first-insertion order

	insert := func(name, value string) {
		fold := headerFold(name)
		if e, ok := byFold[fold]; ok {
			e.name, e.value = name, value
			return
		}
		byFold[fold] = &orderedMapEntry{name: name, value: value}
		insertionOrder = append(insertionOrder, fold)
		keyOf[fold] = name
	}

	for _, h := range caller {
		insert(h.Name, h.Value)
	}
	for _, d := range p.Defaults {
		fold := headerFold(d.Name)
		if _, exists := byFold[fold]; exists {
			continue
		}
		insert(d.Name, d.Value)
	}

	placed := make(map[string]bool, len(p.Order))
	var ordered, rest []HeaderPair

	for _, name := range p.Order {
		fold := headerFold(name)
		e, ok := byFold[fold]
		if !ok {
			continue // no value for this name: no slot
		}
		ordered = append(ordered, HeaderPair{Name: e.name, Value: e.value})
		placed[fold] = true
	}
	for _, fold := range insertionOrder {
		if placed[fold] {
			continue
		}
		e := byFold[fold]
		rest = append(rest, HeaderPair{Name: e.name, Value: e.value})
	}

	return append(ordered, rest...)
}
