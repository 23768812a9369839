// Package tui is the dialogwrap demo: a small bubbletea application that
// assembles a sample page document, attaches wrappers to its dialogs, and
// maps keystrokes to document clicks so every wrapper behavior — polyfilled
// trigger wiring, light dismissal, scroll locking, media reset — can be
// watched live.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dialogwrap/internal/dom"
	"github.com/marcus/dialogwrap/internal/journal"
	"github.com/marcus/dialogwrap/internal/scrolllock"
	"github.com/marcus/dialogwrap/internal/wrapper"
)

// Options configures the demo.
type Options struct {
	Caps     dom.Capabilities
	AutoOpen bool
	Journal  *journal.Journal
	Logger   *slog.Logger
}

// feed collects notification lines for the event pane. It is shared by
// pointer between the model and the dom listeners, which run synchronously
// inside Update while events dispatch.
type feed struct {
	lines []string
}

func (f *feed) add(line string) {
	f.lines = append(f.lines, line)
}

// Model is the bubbletea model for the demo.
type Model struct {
	doc    *dom.Document
	locker *scrolllock.Locker

	settingsWrap *wrapper.Wrapper
	helpWrap     *wrapper.Wrapper

	trigger  *dom.Element
	closeBtn *dom.Element
	settings *dom.Element
	help     *dom.Element

	feed     *feed
	feedView viewport.Model

	journal *journal.Journal
	log     *slog.Logger

	width  int
	height int
	ready  bool
}

// demoHooks layers feed and journal recording on top of the standard close
// side effects. Open notifications are instead picked up by a bubbling
// listener on the page root, so the feed shows both extension surfaces.
type demoHooks struct {
	wrapper.DefaultHooks
	feed    *feed
	journal *journal.Journal
	log     *slog.Logger
}

func (h demoHooks) DialogClosed(w *wrapper.Wrapper) {
	h.DefaultHooks.DialogClosed(w)
	h.feed.add(fmt.Sprintf("close  %s", w.Dialog().ID()))
	if h.journal != nil {
		if err := h.journal.Record(w.Dialog().ID(), "close", false); err != nil {
			h.log.Warn("journal close event", "err", err)
		}
	}
}

// New builds the sample page and attaches the wrappers.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	doc := dom.NewDocument()
	doc.SetCaps(opts.Caps)
	page := doc.Root()

	f := &feed{}
	hooks := demoHooks{feed: f, journal: opts.Journal, log: log}
	locker := scrolllock.New(page)

	// Trigger control lives outside the wrapper, addressing the dialog by id
	// the way declarative commands do.
	trigger := doc.NewElement("button")
	trigger.Text = "Open settings"
	trigger.SetAttr("commandfor", "settings-dialog")
	trigger.SetAttr("command", wrapper.CommandShowModal)
	page.AppendChild(trigger)

	// Settings dialog: light dismissal opt-in, an embedded lazy frame, and a
	// save button targeted by the wrapper's autofocus selector.
	settingsWrapEl := doc.NewElement("dialog-wrapper")
	settingsWrapEl.SetAttr(wrapper.AttrAutofocusTarget, "#save-btn")
	if opts.AutoOpen {
		settingsWrapEl.SetAttr(wrapper.AttrAutoOpen, "")
	}
	page.AppendChild(settingsWrapEl)

	settings := doc.NewElement("dialog")
	settings.SetAttr("id", "settings-dialog")
	settings.SetAttr("closedby", "any")
	settingsWrapEl.AppendChild(settings)

	intro := doc.NewElement("p")
	intro.Text = "Tune the demo to taste. Changes apply immediately."
	settings.AppendChild(intro)

	frame := doc.NewElement("iframe")
	frame.SetAttr("src", "https://player.example/embed/42")
	frame.SetAttr("loading", "lazy")
	settings.AppendChild(frame)

	saveBtn := doc.NewElement("button")
	saveBtn.SetAttr("id", "save-btn")
	saveBtn.Text = "Save"
	settings.AppendChild(saveBtn)

	closeBtn := doc.NewElement("button")
	closeBtn.Text = "Close"
	closeBtn.SetAttr("commandfor", "settings-dialog")
	closeBtn.SetAttr("command", wrapper.CommandClose)
	settings.AppendChild(closeBtn)

	// Help dialog: second wrapper sharing the page's scroll locker.
	helpWrapEl := doc.NewElement("dialog-wrapper")
	page.AppendChild(helpWrapEl)

	help := doc.NewElement("dialog")
	help.SetAttr("id", "help-dialog")
	help.SetAttr("closedby", "any")
	helpWrapEl.AppendChild(help)

	helpBody := doc.NewElement("p")
	helpBody.Text = renderHelp()
	help.AppendChild(helpBody)

	// Every normalized open notification bubbles to the page root.
	page.AddEventListener(wrapper.EventOpen, func(ev *dom.Event) {
		f.add(fmt.Sprintf("open   %s modal=%t", ev.Target.ID(), ev.IsModal))
		if opts.Journal != nil {
			if err := opts.Journal.Record(ev.Target.ID(), "open", ev.IsModal); err != nil {
				log.Warn("journal open event", "err", err)
			}
		}
	})

	settingsWrap := wrapper.New(doc, settingsWrapEl,
		wrapper.WithHooks(hooks),
		wrapper.WithLocker(locker),
		wrapper.WithLogger(log),
	)
	settingsWrap.Attach()

	helpWrap := wrapper.New(doc, helpWrapEl,
		wrapper.WithHooks(hooks),
		wrapper.WithLocker(locker),
		wrapper.WithLogger(log),
	)
	helpWrap.Attach()

	return Model{
		doc:          doc,
		locker:       locker,
		settingsWrap: settingsWrap,
		helpWrap:     helpWrap,
		trigger:      trigger,
		closeBtn:     closeBtn,
		settings:     settings,
		help:         help,
		feed:         f,
		journal:      opts.Journal,
		log:          log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		feedHeight := m.height - 10
		if feedHeight < 3 {
			feedHeight = 3
		}
		if !m.ready {
			m.feedView = viewport.New(m.width-4, feedHeight)
			m.ready = true
		} else {
			m.feedView.Width = m.width - 4
			m.feedView.Height = feedHeight
		}
		m.syncFeed()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.settingsWrap.Detach()
			m.helpWrap.Detach()
			return m, tea.Quit

		case "o":
			m.trigger.Click()

		case "c":
			m.closeBtn.Click()

		case "b":
			// A click whose target is the dialog itself: the backdrop.
			m.settings.Click()

		case "esc":
			if m.settings.Open() {
				m.settings.Close()
			} else if m.help.Open() {
				m.help.Close()
			}

		case "?":
			if m.help.Open() {
				m.help.Close()
			} else if err := m.help.ShowModal(); err != nil {
				m.log.Warn("open help dialog", "err", err)
			}

		default:
			var cmd tea.Cmd
			m.feedView, cmd = m.feedView.Update(msg)
			return m, cmd
		}
		m.syncFeed()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.feedView, cmd = m.feedView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// syncFeed pushes the notification lines into the viewport, keeping the
// newest line visible.
func (m *Model) syncFeed() {
	if !m.ready {
		return
	}
	m.feedView.SetContent(strings.Join(m.feed.lines, "\n"))
	m.feedView.GotoBottom()
}
