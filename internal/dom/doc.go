// Package dom provides the host document model the dialog wrapper runs
// against: a small in-memory element tree with attributes, bubbling events,
// child-list observation, and the platform's native dialog mechanics.
//
// The wrapper core treats this package as an external collaborator. It only
// reads and writes attributes, subscribes to events, and calls the dialog
// operations (Show, ShowModal, Close). Which behaviors the host handles
// natively is controlled per document via Capabilities; disabling a
// capability is how the wrapper's polyfill branches are selected.
//
// # Quick Start
//
//	doc := dom.NewDocument()
//	dlg := doc.NewElement("dialog")
//	doc.Root().AppendChild(dlg)
//
//	h := dlg.AddEventListener("toggle", func(ev *dom.Event) {
//	    if ev.NewState == "open" {
//	        // dialog just opened
//	    }
//	})
//	defer dlg.RemoveEventListener(h)
//
//	if err := dlg.ShowModal(); err != nil {
//	    // already open, or not a dialog
//	}
//
// The package is single-threaded by design: all mutation and dispatch happens
// on the caller's goroutine, and observer callbacks and event listeners run
// synchronously in dispatch order. It is not safe for concurrent use.
package dom
