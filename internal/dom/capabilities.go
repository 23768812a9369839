package dom

// Capabilities describes which declarative dialog behaviors the host handles
// natively. A disabled capability is not an error condition; it is the signal
// for the wrapper to install the corresponding polyfill.
type Capabilities struct {
	// CommandEvents enables native routing of clicks on elements carrying
	// commandfor/command attributes to the referenced dialog.
	CommandEvents bool

	// LightDismiss enables native handling of the dialog closedby attribute:
	// a click on an open dialog's own backdrop area closes it when the dialog
	// declares closedby="any".
	LightDismiss bool
}

// DefaultCapabilities returns the capability set of a fully featured host.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		CommandEvents: true,
		LightDismiss:  true,
	}
}
