package dom

import "strings"

// Inline style helpers. The style attribute holds "prop: value" pairs
// separated by semicolons; property order is preserved across edits so that
// save/restore cycles round-trip the attribute text.

// styleProp is one parsed inline style declaration.
type styleProp struct {
	name  string
	value string
}

// StyleValue returns the value of an inline style property, or "" if the
// property (or the style attribute) is absent.
func (e *Element) StyleValue(prop string) string {
	for _, p := range e.parseStyle() {
		if p.name == prop {
			return p.value
		}
	}
	return ""
}

// SetStyleValue sets an inline style property. An empty value removes the
// property, and removing the last property removes the style attribute
// entirely rather than leaving an empty attribute behind.
func (e *Element) SetStyleValue(prop, value string) {
	props := e.parseStyle()
	if value == "" {
		out := props[:0]
		for _, p := range props {
			if p.name != prop {
				out = append(out, p)
			}
		}
		e.writeStyle(out)
		return
	}

	for i, p := range props {
		if p.name == prop {
			props[i].value = value
			e.writeStyle(props)
			return
		}
	}
	e.writeStyle(append(props, styleProp{name: prop, value: value}))
}

// RemoveStyleValue removes an inline style property.
func (e *Element) RemoveStyleValue(prop string) {
	e.SetStyleValue(prop, "")
}

func (e *Element) parseStyle() []styleProp {
	raw, ok := e.Attr("style")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var props []styleProp
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		props = append(props, styleProp{
			name:  strings.TrimSpace(name),
			value: strings.TrimSpace(value),
		})
	}
	return props
}

func (e *Element) writeStyle(props []styleProp) {
	if len(props) == 0 {
		e.RemoveAttr("style")
		return
	}
	var sb strings.Builder
	for i, p := range props {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(p.name)
		sb.WriteString(": ")
		sb.WriteString(p.value)
	}
	e.SetAttr("style", sb.String())
}
