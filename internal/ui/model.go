package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	fsnotify "github.com/fsnotify/fsnotify"

	"cellmap/internal/match"
	"cellmap/internal/textcell"
	"cellmap/internal/textview"
)

// textZone is the bubblezone id of the text area.
const textZone = "view.text"

// Options configures the viewer.
type Options struct {
	// Path is shown in the status bar and watched for changes when set.
	Path       string
	Lines      []string
	Classifier textcell.Classifier
	TabStride  int
	Matcher    match.Matcher
}

type model struct {
	path    string
	cls     textcell.Classifier
	view    *textview.View
	matcher match.Matcher

	width  int
	height int

	// find input
	filter    textinput.Model
	filtering bool
	pattern   string
	matches   []match.Result

	help     help.Model
	showHelp bool
	helpOut  string
	helpW    int

	notice string
	// notice reports a failure
	failed   bool
	quitting bool

	watcher *fsnotify.Watcher
	watchCh chan struct{}
}

func newModel(o Options) model {
	if o.Classifier == nil {
		o.Classifier = textcell.NewClassifier(textcell.Capability{DoubleWide: true})
	}
	if o.Matcher == nil {
		o.Matcher = match.Fuzzy{}
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "find"
	ti.CharLimit = 256
	ti.Blur()

	return model{
		path:    o.Path,
		cls:     o.Classifier,
		view:    textview.New(o.Lines, o.Classifier, o.TabStride),
		matcher: o.Matcher,
		filter:  ti,
		help:    help.New(),
	}
}

// New returns the viewer model for app.Start.
func New(o Options) tea.Model { return newModel(o) }

func (m model) Init() tea.Cmd {
	return startWatchCmd(m.path)
}

// chrome is the number of rows used below the text.
func (m model) chrome() int {
	n := 2 // status bar and key help
	if m.filtering {
		n++
	}
	return n
}

func (m model) gutterWidth() int {
	n, w := m.view.LineCount(), 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w + 1
}

// layout resizes the text view to the window minus the gutter and chrome.
func (m *model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.view.SetSize(m.width-m.gutterWidth(), m.height-m.chrome())
	m.filter.Width = max(m.width-3, 5)
	m.help.Width = m.width
}

func (m model) lineStrings() []string {
	out := make([]string, m.view.LineCount())
	for i := range out {
		out[i] = m.view.Line(i).String()
	}
	return out
}
