// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/statgraph-tui/internal/logging"
)

// =============================================================================
// FILE WATCHER INTERFACE
// =============================================================================

// FileWatcher is the interface for preference-file watching
// implementations.
type FileWatcher interface {
	// Watch starts watching for changes.
	Watch() error

	// Close stops watching and releases resources.
	Close() error
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher reports preference-file changes through a callback.
// It watches the parent directory rather than the file itself: editors
// and atomic saves replace the file by rename, which would silently
// detach a file-level watch.
type FsnotifyWatcher struct {
	path     string
	debounce time.Duration
	onChange func()

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	pending time.Time
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based watcher for one file.
func NewFsnotifyWatcher(path string, debounce time.Duration, onChange func()) (*FsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FsnotifyWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for changes.
func (fw *FsnotifyWatcher) Watch() error {
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processPending()

	return nil
}

func (fw *FsnotifyWatcher) processEvents() {
	log := logging.Component("prefs")

	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("preferences file changed")
			fw.mu.Lock()
			fw.pending = time.Now()
			fw.mu.Unlock()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

// processPending coalesces bursts of events into one callback per
// debounce window. Editors commonly emit several events per save.
func (fw *FsnotifyWatcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			fw.mu.Lock()
			fire := !fw.pending.IsZero() && time.Since(fw.pending) >= fw.debounce
			if fire {
				fw.pending = time.Time{}
			}
			fw.mu.Unlock()

			if fire {
				fw.onChange()
			}
		}
	}
}

// Close stops watching and releases resources.
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher implements FileWatcher by comparing modification time
// and size on an interval, for filesystems fsnotify cannot watch.
type PollingWatcher struct {
	path     string
	interval time.Duration
	onChange func()

	mu      sync.Mutex
	modTime time.Time
	size    int64
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewPollingWatcher creates a new polling-based watcher for one file.
func NewPollingWatcher(path string, interval time.Duration, onChange func()) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		path:     filepath.Clean(path),
		interval: interval,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts watching for changes.
func (pw *PollingWatcher) Watch() error {
	pw.record()
	go pw.poll()
	return nil
}

func (pw *PollingWatcher) record() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if info, err := os.Stat(pw.path); err == nil {
		pw.modTime = info.ModTime()
		pw.size = info.Size()
	} else {
		pw.modTime = time.Time{}
		pw.size = -1
	}
}

func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			if pw.changed() {
				pw.record()
				pw.onChange()
			}
		}
	}
}

func (pw *PollingWatcher) changed() bool {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	info, err := os.Stat(pw.path)
	if err != nil {
		return pw.size != -1
	}
	return !info.ModTime().Equal(pw.modTime) || info.Size() != pw.size
}

// Close stops watching.
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}

// =============================================================================
// WATCHER FACTORY
// =============================================================================

// StartWatcher watches the canonical preferences file and invokes
// onChange after edits settle. It prefers fsnotify and falls back to
// polling when the platform cannot deliver events.
func StartWatcher(onChange func()) (FileWatcher, error) {
	path, err := PathTOML()
	if err != nil {
		return nil, err
	}
	if err := EnsureAppDir(); err != nil {
		return nil, err
	}
	return startWatcherAt(path, onChange)
}

func startWatcherAt(path string, onChange func()) (FileWatcher, error) {
	log := logging.Component("prefs")

	fw, err := NewFsnotifyWatcher(path, 200*time.Millisecond, onChange)
	if err == nil {
		if err := fw.Watch(); err == nil {
			return fw, nil
		}
		fw.Close()
	}

	log.Warn().Err(err).Msg("fsnotify unavailable, polling instead")
	pw := NewPollingWatcher(path, 2*time.Second, onChange)
	if err := pw.Watch(); err != nil {
		return nil, err
	}
	return pw, nil
}
