package dom

// Document owns an element tree and the host capability flags.
type Document struct {
	root *Element
	caps Capabilities
}

// NewDocument creates a document with an empty root element and all host
// capabilities enabled.
func NewDocument() *Document {
	d := &Document{caps: DefaultCapabilities()}
	d.root = d.NewElement("body")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// Caps returns the document's capability flags.
func (d *Document) Caps() Capabilities {
	return d.caps
}

// SetCaps replaces the document's capability flags.
func (d *Document) SetCaps(caps Capabilities) {
	d.caps = caps
}

// NewElement creates a detached element belonging to this document.
func (d *Document) NewElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		doc:   d,
		attrs: make(map[string]string),
	}
}

// ElementByID returns the first element in the tree with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.root.walk(func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Element is a node in the document tree. Tag and Text are plain data; the
// tree structure and attributes are manipulated through methods so that
// observers see every mutation.
type Element struct {
	Tag  string
	Text string

	doc      *Document
	parent   *Element
	children []*Element

	attrs     map[string]string
	attrOrder []string

	listeners     map[string][]*ListenerHandle
	observers     []*Observer
	attrObservers []*AttrObserver
	nextID        int

	// native dialog state, managed by dialog.go
	open  bool
	modal bool
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the element's parent, or nil for a detached or root element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's direct children.
func (e *Element) Children() []*Element {
	return e.children
}

// AppendChild adds child as the last child of e and notifies child-list
// observers on e. A child is detached from its previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.notifyChildListChanged()
}

// RemoveChild detaches child from e and notifies child-list observers on e.
// Removing an element that is not a child is a no-op.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.notifyChildListChanged()
			return
		}
	}
}

// ID returns the element's id attribute, or "".
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Attr returns the attribute value and whether the attribute is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetAttr sets an attribute. Presence-only attributes use an empty value.
func (e *Element) SetAttr(name, value string) {
	if _, ok := e.attrs[name]; !ok {
		e.attrOrder = append(e.attrOrder, name)
	}
	e.attrs[name] = value
	e.notifyAttrChanged(name)
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.attrOrder {
		if n == name {
			e.attrOrder = append(e.attrOrder[:i], e.attrOrder[i+1:]...)
			break
		}
	}
	e.notifyAttrChanged(name)
}

// AttrNames returns the attribute names in insertion order.
func (e *Element) AttrNames() []string {
	out := make([]string, len(e.attrOrder))
	copy(out, e.attrOrder)
	return out
}

// walk visits e and its descendants depth-first. The visitor returns false
// to stop the walk.
func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// FirstByTag returns the first descendant of e with the given tag, or nil.
// The element itself is not considered.
func (e *Element) FirstByTag(tag string) *Element {
	var found *Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if n.Tag == tag {
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

// ElementsByTag returns all descendants of e with the given tag, in document
// order. The element itself is not considered.
func (e *Element) ElementsByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.children {
		c.walk(func(n *Element) bool {
			if n.Tag == tag {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}
