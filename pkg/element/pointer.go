package element

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a Pointer does not resolve.
var ErrNotFound = errors.New("element not found")

type (
	PointerToken struct {
		Raw   string
		Value string
	}

	// Pointer addresses an element inside a tree, see RFC 6901.
	// The empty Pointer addresses the root.
	Pointer []PointerToken
)

// ParsePointer parses a JSON Pointer, like `/info/files/0/path`.
func ParsePointer(path string) (Pointer, error) {
	if path == "" {
		return Pointer{}, nil
	}

	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("invalid pointer %q: must be empty or start with /", path)
	}

	var (
		ps = strings.Split(path[1:], "/")
		// http://tools.ietf.org/html/rfc6901#section-4
		dec = strings.NewReplacer("~1", "/", "~0", "~")
		tks = make(Pointer, 0, len(ps))
	)

	for i := range ps {
		tks = append(tks, PointerToken{
			Raw:   ps[i],
			Value: dec.Replace(ps[i]),
		})
	}

	return tks, nil
}

func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}

	ss := make([]string, len(p))
	for i := range p {
		ss[i] = p[i].Raw
	}

	return "/" + strings.Join(ss, "/")
}

// Select returns the element addressed by the given Pointer.
func Select(root Element, p Pointer) (Element, error) {
	target := root

	for i := range p {
		seg := p[i].Value

		switch t := target.(type) {
		case *Dictionary:
			v, ok := t.Get(ByteString(seg))
			if !ok {
				return nil, fmt.Errorf("%w: %s: no key %q", ErrNotFound, p[:i+1], seg)
			}

			target = v
		case List:
			idx, err := listIndex(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, p[:i+1], err)
			}

			if idx >= len(t) {
				return nil, fmt.Errorf("%w: %s: index %d out of %d items", ErrNotFound, p[:i+1], idx, len(t))
			}

			target = t[idx]
		default:
			return nil, fmt.Errorf("%w: %s: cannot descend into %T", ErrNotFound, p[:i+1], target)
		}
	}

	return target, nil
}

func listIndex(seg string) (int, error) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, fmt.Errorf("invalid index %q", seg)
	}

	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid index %q", seg)
	}

	return idx, nil
}
