package dom

import (
	"fmt"
	"strings"
)

// Selector support covers compound simple selectors: an optional tag name
// followed by any mix of #id, .class, [attr], [attr=value], :open and
// :modal, plus comma-separated selector lists. Combinators (descendant,
// child, sibling) are not supported; the wrapper only ever needs id,
// attribute and pseudo-class addressing.

// simpleTest is one predicate within a compound selector.
type simpleTest func(*Element) bool

// compiledSelector matches an element against a selector list.
type compiledSelector struct {
	alternatives [][]simpleTest
}

func (cs *compiledSelector) matches(e *Element) bool {
	for _, tests := range cs.alternatives {
		ok := true
		for _, test := range tests {
			if !test(e) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// compileSelector parses a selector list into predicates.
func compileSelector(sel string) (*compiledSelector, error) {
	cs := &compiledSelector{}
	for _, alt := range strings.Split(sel, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, fmt.Errorf("compile selector %q: empty selector", sel)
		}
		tests, err := compileCompound(alt)
		if err != nil {
			return nil, err
		}
		cs.alternatives = append(cs.alternatives, tests)
	}
	return cs, nil
}

func compileCompound(sel string) ([]simpleTest, error) {
	var tests []simpleTest
	rest := sel

	// Leading tag name, if any.
	if rest != "" && rest[0] != '#' && rest[0] != '.' && rest[0] != '[' && rest[0] != ':' {
		end := strings.IndexAny(rest, "#.[:")
		if end == -1 {
			end = len(rest)
		}
		tag := rest[:end]
		rest = rest[end:]
		tests = append(tests, func(e *Element) bool { return e.Tag == tag })
	}

	for rest != "" {
		switch rest[0] {
		case '#':
			name, remaining := takeIdent(rest[1:])
			if name == "" {
				return nil, fmt.Errorf("compile selector %q: missing id after #", sel)
			}
			rest = remaining
			tests = append(tests, func(e *Element) bool { return e.ID() == name })

		case '.':
			name, remaining := takeIdent(rest[1:])
			if name == "" {
				return nil, fmt.Errorf("compile selector %q: missing class after .", sel)
			}
			rest = remaining
			tests = append(tests, func(e *Element) bool { return hasClass(e, name) })

		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("compile selector %q: unterminated attribute selector", sel)
			}
			body := rest[1:end]
			rest = rest[end+1:]
			name, want, hasValue := strings.Cut(body, "=")
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("compile selector %q: empty attribute name", sel)
			}
			if hasValue {
				want = strings.Trim(strings.TrimSpace(want), `"'`)
				tests = append(tests, func(e *Element) bool {
					v, ok := e.Attr(name)
					return ok && v == want
				})
			} else {
				tests = append(tests, func(e *Element) bool { return e.HasAttr(name) })
			}

		case ':':
			name, remaining := takeIdent(rest[1:])
			rest = remaining
			switch name {
			case "open":
				tests = append(tests, func(e *Element) bool { return e.Open() })
			case "modal":
				tests = append(tests, func(e *Element) bool { return e.Modal() })
			default:
				return nil, fmt.Errorf("compile selector %q: unsupported pseudo-class :%s", sel, name)
			}

		default:
			return nil, fmt.Errorf("compile selector %q: unexpected %q", sel, rest[0])
		}
	}
	return tests, nil
}

// takeIdent splits off a leading identifier (letters, digits, -, _).
func takeIdent(s string) (ident, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		isIdent := c == '-' || c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isIdent {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

func hasClass(e *Element, name string) bool {
	classes, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// Matches reports whether the element matches the selector. Invalid
// selectors match nothing.
func Matches(e *Element, sel string) bool {
	cs, err := compileSelector(sel)
	if err != nil {
		return false
	}
	return cs.matches(e)
}

// QuerySelector returns the first element in the document matching the
// selector, in document order, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	cs, err := compileSelector(sel)
	if err != nil {
		return nil
	}
	var found *Element
	d.root.walk(func(e *Element) bool {
		if cs.matches(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns all elements in the document matching the
// selector, in document order.
func (d *Document) QuerySelectorAll(sel string) []*Element {
	cs, err := compileSelector(sel)
	if err != nil {
		return nil
	}
	var out []*Element
	d.root.walk(func(e *Element) bool {
		if cs.matches(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// QuerySelector returns the first descendant of e matching the selector, or
// nil. The element itself is not considered.
func (e *Element) QuerySelector(sel string) *Element {
	cs, err := compileSelector(sel)
	if err != nil {
		return nil
	}
	var found *Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if cs.matches(n) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}
