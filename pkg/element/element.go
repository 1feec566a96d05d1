// Package element holds the decoded form of a Bencode document.
//
// Element is a closed set of variants: Integer, ByteString, List and
// *Dictionary. Trees are built once by the parser and must not be
// mutated afterwards.
package element

import (
	"fmt"
	"sort"
)

// Element is a node of a decoded Bencode document.
type Element interface {
	element()
}

type (
	// Integer is a signed 64-bit integer.
	Integer int64

	// ByteString is a sequence of ASCII bytes.
	ByteString string

	// List is an ordered sequence of elements.
	List []Element

	// Dictionary maps byte strings to elements,
	// its entries are in strictly ascending byte-wise key order.
	Dictionary struct {
		entries []Entry
	}

	// Entry is a single key/value pair of a Dictionary.
	Entry struct {
		Key   ByteString
		Value Element
	}
)

func (Integer) element()     {}
func (ByteString) element()  {}
func (List) element()        {}
func (*Dictionary) element() {}

// NewDictionary returns a Dictionary over the given entries,
// which must already be in strictly ascending key order.
func NewDictionary(entries ...Entry) (*Dictionary, error) {
	if i := OrderViolation(entries); i >= 0 {
		return nil, fmt.Errorf("key %q at %d is not greater than key %q",
			entries[i].Key, i, entries[i-1].Key)
	}

	return &Dictionary{entries: entries}, nil
}

// MustDictionary is NewDictionary that panics on unordered keys.
func MustDictionary(entries ...Entry) *Dictionary {
	d, err := NewDictionary(entries...)
	if err != nil {
		panic(err)
	}

	return d
}

// OrderViolation returns the index of the first key that is not strictly
// greater than its predecessor, or -1 if the keys are in order.
func OrderViolation(entries []Entry) int {
	for i := 1; i < len(entries); i++ {
		if entries[i].Key <= entries[i-1].Key {
			return i
		}
	}

	return -1
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// Entries returns the entries in key order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}

	return append([]Entry(nil), d.entries...)
}

// Keys returns the keys in order.
func (d *Dictionary) Keys() []ByteString {
	ks := make([]ByteString, d.Len())
	for i := range ks {
		ks[i] = d.entries[i].Key
	}

	return ks
}

// Get returns the value of the given key.
func (d *Dictionary) Get(key ByteString) (Element, bool) {
	n := d.Len()

	i := sort.Search(n, func(i int) bool { return d.entries[i].Key >= key })
	if i < n && d.entries[i].Key == key {
		return d.entries[i].Value, true
	}

	return nil, false
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b Element) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case ByteString:
		y, ok := b.(ByteString)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}

		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}

		return true
	case *Dictionary:
		y, ok := b.(*Dictionary)
		if !ok || x.Len() != y.Len() {
			return false
		}

		for i := range x.entries {
			if x.entries[i].Key != y.entries[i].Key ||
				!Equal(x.entries[i].Value, y.entries[i].Value) {
				return false
			}
		}

		return true
	default:
		panic(fmt.Sprintf("element: unknown variant %T", a))
	}
}
