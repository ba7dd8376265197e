package ui

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	fsnotify "github.com/fsnotify/fsnotify"

	"cellmap/internal/system"
	"cellmap/internal/textview"
)

// startWatchCmd watches the directory holding path so that editors which
// replace the file on save are still seen.
func startWatchCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			system.Logger.Debug("watch unavailable", "err", err)
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if err := w.Add(filepath.Dir(abs)); err != nil {
			system.Logger.Debug("watch failed", "path", abs, "err", err)
			_ = w.Close()
			return nil
		}
		ch := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					if filepath.Clean(ev.Name) != filepath.Clean(abs) {
						continue
					}
					if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
						continue
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		// let the writer finish
		time.Sleep(120 * time.Millisecond)
		return fileChangedMsg{}
	}
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := os.ReadFile(path)
		if err != nil {
			return fileLoadedMsg{err: err}
		}
		return fileLoadedMsg{lines: textview.SplitLines(string(b))}
	}
}
