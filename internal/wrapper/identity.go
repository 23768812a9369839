package wrapper

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ensureDialogID assigns an identifier to the dialog if it has none. The
// polyfills locate related controls through document-wide id lookups, so the
// id must exist before they are wired. An id the author already set is never
// touched.
func (w *Wrapper) ensureDialogID() {
	if w.dialog.ID() != "" {
		return
	}
	w.dialog.SetAttr("id", NewDialogID())
}

// NewDialogID returns a collision-resistant dialog identifier: a random UUID
// when entropy is available, otherwise a timestamp joined with a random
// base-36 fragment.
func NewDialogID() string {
	if u, err := uuid.NewRandom(); err == nil {
		return "dialog-" + u.String()
	}
	return fmt.Sprintf("dialog-%d-%s",
		time.Now().UnixMilli(),
		strconv.FormatUint(rand.Uint64(), 36))
}
