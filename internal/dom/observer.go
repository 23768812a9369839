package dom

// Observer watches an element for child-list mutations. Callbacks run
// synchronously, on the mutating goroutine, after the mutation is applied.
type Observer struct {
	el           *Element
	fn           func()
	disconnected bool
}

// ObserveChildren registers fn to run whenever e's direct child list changes.
func (e *Element) ObserveChildren(fn func()) *Observer {
	o := &Observer{el: e, fn: fn}
	e.observers = append(e.observers, o)
	return o
}

// Disconnect stops the observer. Disconnecting twice is a no-op.
func (o *Observer) Disconnect() {
	if o == nil || o.disconnected {
		return
	}
	o.disconnected = true
	obs := o.el.observers
	for i, reg := range obs {
		if reg == o {
			o.el.observers = append(obs[:i], obs[i+1:]...)
			return
		}
	}
}

func (e *Element) notifyChildListChanged() {
	if len(e.observers) == 0 {
		return
	}
	snapshot := make([]*Observer, len(e.observers))
	copy(snapshot, e.observers)
	for _, o := range snapshot {
		if !o.disconnected {
			o.fn()
		}
	}
}

// AttrObserver watches an element for attribute mutations.
type AttrObserver struct {
	el           *Element
	fn           func(name string)
	disconnected bool
}

// ObserveAttrs registers fn to run after any attribute on e is set or
// removed, with the attribute's name.
func (e *Element) ObserveAttrs(fn func(name string)) *AttrObserver {
	o := &AttrObserver{el: e, fn: fn}
	e.attrObservers = append(e.attrObservers, o)
	return o
}

// Disconnect stops the observer. Disconnecting twice is a no-op.
func (o *AttrObserver) Disconnect() {
	if o == nil || o.disconnected {
		return
	}
	o.disconnected = true
	obs := o.el.attrObservers
	for i, reg := range obs {
		if reg == o {
			o.el.attrObservers = append(obs[:i], obs[i+1:]...)
			return
		}
	}
}

func (e *Element) notifyAttrChanged(name string) {
	if len(e.attrObservers) == 0 {
		return
	}
	snapshot := make([]*AttrObserver, len(e.attrObservers))
	copy(snapshot, e.attrObservers)
	for _, o := range snapshot {
		if !o.disconnected {
			o.fn(name)
		}
	}
}

// WatchUntil observes e's child list and, on the first mutation after which
// pred reports true, disconnects itself and then runs fn. pred is not
// evaluated at registration time; callers that want an immediate check do it
// themselves before registering.
func WatchUntil(e *Element, pred func() bool, fn func()) *Observer {
	var o *Observer
	o = e.ObserveChildren(func() {
		if !pred() {
			return
		}
		o.Disconnect()
		fn()
	})
	return o
}
