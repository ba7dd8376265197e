package ui

import fsnotify "github.com/fsnotify/fsnotify"

// Bubble Tea messages

type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}

type fileChangedMsg struct{}

// fileLoadedMsg carries the re-read buffer after a change on disk.
type fileLoadedMsg struct {
	lines []string
	err   error
}

type helpRenderedMsg struct {
	width int
	out   string
}

type noticeMsg string
