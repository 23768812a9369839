package dom

// Event is the fixed-schema notification passed to listeners. The state
// fields are only meaningful for the event types that set them: OldState and
// NewState carry "open"/"closed" on toggle events, IsModal carries the
// modality of a normalized open notification.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Bubbles       bool
	Cancelable    bool

	OldState string
	NewState string
	IsModal  bool

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the host's default action for cancelable events.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// StopPropagation prevents the event from bubbling past the current target.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// ListenerFunc handles a dispatched event.
type ListenerFunc func(*Event)

// ListenerHandle identifies a registered listener so it can be removed.
// Function values are not comparable, so registration returns a handle
// instead of relying on the callback's identity.
type ListenerHandle struct {
	id int
	el *Element
	// Type is the event type the listener was registered for.
	Type string
	fn   ListenerFunc
}

// AddEventListener registers fn for events of the given type on e and
// returns a handle for later removal.
func (e *Element) AddEventListener(typ string, fn ListenerFunc) *ListenerHandle {
	if e.listeners == nil {
		e.listeners = make(map[string][]*ListenerHandle)
	}
	e.nextID++
	h := &ListenerHandle{id: e.nextID, el: e, Type: typ, fn: fn}
	e.listeners[typ] = append(e.listeners[typ], h)
	return h
}

// RemoveEventListener unregisters a previously added listener. Removing a
// nil or already-removed handle is a no-op.
func (e *Element) RemoveEventListener(h *ListenerHandle) {
	if h == nil || h.el != e || e.listeners == nil {
		return
	}
	regs := e.listeners[h.Type]
	for i, reg := range regs {
		if reg.id == h.id {
			e.listeners[h.Type] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// DispatchEvent delivers ev to listeners on e and, for bubbling events, on
// each ancestor in turn. After propagation the host's default action runs
// unless the event was canceled. Returns false if PreventDefault was called.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	for node := e; node != nil; node = node.parent {
		ev.CurrentTarget = node
		node.invokeListeners(ev)
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.CurrentTarget = nil

	if !ev.defaultPrevented && e.doc != nil {
		e.doc.runDefaultAction(ev)
	}
	return !ev.defaultPrevented
}

// invokeListeners calls the listeners registered on the element for the
// event's type. The registration slice is copied first so listeners may
// remove themselves (or each other) during dispatch.
func (e *Element) invokeListeners(ev *Event) {
	if e.listeners == nil {
		return
	}
	regs := e.listeners[ev.Type]
	if len(regs) == 0 {
		return
	}
	snapshot := make([]*ListenerHandle, len(regs))
	copy(snapshot, regs)
	for _, reg := range snapshot {
		reg.fn(ev)
	}
}

// Click dispatches a bubbling, cancelable click event on the element.
func (e *Element) Click() bool {
	return e.DispatchEvent(&Event{Type: "click", Bubbles: true, Cancelable: true})
}

// runDefaultAction performs the host's built-in response to an event after
// propagation completes. Only clicks have default actions, and each is gated
// on the corresponding capability so that a degraded host does nothing and
// leaves the behavior to the wrapper's polyfills.
func (d *Document) runDefaultAction(ev *Event) {
	if ev.Type != "click" {
		return
	}

	if d.caps.CommandEvents {
		if d.routeCommandClick(ev.Target) {
			return
		}
	}

	if d.caps.LightDismiss {
		t := ev.Target
		if t.Tag == "dialog" && t.open {
			if v, ok := t.Attr("closedby"); ok && v == "any" {
				t.Close()
			}
		}
	}
}

// routeCommandClick implements native declarative command wiring: the nearest
// element at or above target carrying a commandfor attribute invokes the
// named command on the referenced dialog. Returns true if a command element
// was found, whether or not the command could be performed.
func (d *Document) routeCommandClick(target *Element) bool {
	var invoker *Element
	for n := target; n != nil; n = n.parent {
		if n.HasAttr("commandfor") {
			invoker = n
			break
		}
	}
	if invoker == nil {
		return false
	}

	ref, _ := invoker.Attr("commandfor")
	dlg := d.ElementByID(ref)
	if dlg == nil || dlg.Tag != "dialog" {
		return true
	}

	cmd, _ := invoker.Attr("command")
	switch cmd {
	case "show-modal":
		_ = dlg.ShowModal()
	case "close":
		dlg.Close()
	}
	return true
}
