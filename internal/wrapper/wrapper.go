// Package wrapper progressively enhances a host dialog element with
// declarative open/close triggers, light dismissal, autofocus marking,
// scroll locking and media reset.
//
// A Wrapper is created around a wrapper element that will contain exactly
// one dialog descendant. Attach starts the lifecycle: if the content is
// already present the wrapper initializes immediately, otherwise it waits
// for the first child-list change that provides content. Initialization runs
// at most once per instance.
//
// The wrapper never implements the dialog widget itself. Rendering, the
// open/close mechanics and focus trapping belong to the host; this package
// only coordinates around them, and only fills in declarative command wiring
// and light dismissal when the host reports no native support.
package wrapper

import (
	"log/slog"

	"github.com/marcus/dialogwrap/internal/dom"
	"github.com/marcus/dialogwrap/internal/scrolllock"
)

// EventOpen is the normalized notification type the wrapper republishes
// whenever its dialog opens. The event bubbles, is not cancelable, and
// carries the dialog's modality in the IsModal field.
const EventOpen = "open"

// Wrapper-recognized attributes.
const (
	// AttrAutoOpen, on the wrapper element, opens the dialog modally
	// immediately after initialization.
	AttrAutoOpen = "autoopen"

	// AttrAutofocusTarget, on the wrapper element, is a selector for the
	// dialog descendant to mark for autofocus.
	AttrAutofocusTarget = "autofocus-target"
)

// boundListener pairs a listener handle with the element it was added to so
// teardown can release every subscription.
type boundListener struct {
	el *dom.Element
	h  *dom.ListenerHandle
}

// Wrapper coordinates one wrapped dialog. It is not safe for concurrent use;
// like the document it operates on, it lives on the host's event loop.
type Wrapper struct {
	doc  *dom.Document
	root *dom.Element

	initialized bool
	dialog      *dom.Element
	observer    *dom.Observer

	// Non-owning control lookups, re-resolved at init time. Either may be
	// nil when the page declares no matching control.
	triggerBtn *dom.Element
	closeBtn   *dom.Element

	bound []boundListener

	hooks     Hooks
	locker    *scrolllock.Locker
	holdsLock bool
	log       *slog.Logger
}

// Option configures a Wrapper.
type Option func(*Wrapper)

// WithHooks replaces the default open/close side-effect handlers. Custom
// hooks usually embed DefaultHooks and override one method.
func WithHooks(h Hooks) Option {
	return func(w *Wrapper) {
		if h != nil {
			w.hooks = h
		}
	}
}

// WithLocker shares a page-level scroll locker across wrappers. Without it
// each wrapper owns a private locker over the document root, which is
// sufficient for single-dialog pages.
func WithLocker(l *scrolllock.Locker) Option {
	return func(w *Wrapper) {
		if l != nil {
			w.locker = l
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(w *Wrapper) {
		if log != nil {
			w.log = log
		}
	}
}

// New creates a wrapper around root, which is expected to (eventually)
// contain one dialog descendant. Call Attach to start the lifecycle.
func New(doc *dom.Document, root *dom.Element, opts ...Option) *Wrapper {
	w := &Wrapper{
		doc:   doc,
		root:  root,
		hooks: DefaultHooks{},
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.locker == nil {
		w.locker = scrolllock.New(doc.Root())
	}
	return w
}

// Attach initializes the wrapper if its content already exists, otherwise
// registers a one-shot watcher that initializes on the first child-list
// change that provides content.
func (w *Wrapper) Attach() {
	if len(w.root.Children()) > 0 {
		w.initialize()
		return
	}
	w.observer = dom.WatchUntil(w.root,
		func() bool { return len(w.root.Children()) > 0 },
		w.initialize,
	)
}

// Detach releases the content watcher and every event subscription the
// wrapper holds. The wrapper stays inert afterwards; it is not re-attachable.
func (w *Wrapper) Detach() {
	if w.observer != nil {
		w.observer.Disconnect()
		w.observer = nil
	}
	for _, b := range w.bound {
		b.el.RemoveEventListener(b.h)
	}
	w.bound = nil
}

// Initialized reports whether initialization has run.
func (w *Wrapper) Initialized() bool {
	return w.initialized
}

// Dialog returns the wrapped dialog element, or nil before initialization
// or when the content never contained one.
func (w *Wrapper) Dialog() *dom.Element {
	return w.dialog
}

// Document returns the host document.
func (w *Wrapper) Document() *dom.Document {
	return w.doc
}

// initialize performs the one-time wiring. Repeat invocations are no-ops,
// and a missing dialog aborts the remaining steps with a diagnostic rather
// than an error: the wrapper simply stays inert.
func (w *Wrapper) initialize() {
	if w.initialized {
		return
	}
	w.initialized = true

	if w.observer != nil {
		w.observer.Disconnect()
		w.observer = nil
	}

	w.dialog = w.root.FirstByTag("dialog")
	if w.dialog == nil {
		w.log.Warn("dialog wrapper: no dialog element found in content")
		return
	}

	w.ensureDialogID()
	w.bindDialogEvents()
	w.applyAutofocus()
	w.wireCommandControls()
	w.wireLightDismiss()

	if w.root.HasAttr(AttrAutoOpen) {
		if err := w.dialog.ShowModal(); err != nil {
			w.log.Warn("dialog wrapper: autoopen failed", "dialog", w.dialog.ID(), "err", err)
		}
	}
}

// listen adds a listener and records it for teardown.
func (w *Wrapper) listen(el *dom.Element, typ string, fn dom.ListenerFunc) *dom.ListenerHandle {
	h := el.AddEventListener(typ, fn)
	w.bound = append(w.bound, boundListener{el: el, h: h})
	return h
}

// AcquireScrollLock engages the page scroll lock on behalf of this wrapper.
// A wrapper holds at most one lock at a time.
func (w *Wrapper) AcquireScrollLock() {
	if w.holdsLock {
		return
	}
	w.holdsLock = true
	w.locker.Acquire()
}

// ReleaseScrollLock releases the lock if this wrapper holds one.
func (w *Wrapper) ReleaseScrollLock() {
	if !w.holdsLock {
		return
	}
	w.holdsLock = false
	w.locker.Release()
}
