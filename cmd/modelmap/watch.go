package main

import (
	"context"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"modelmap/internal/common"
	"modelmap/internal/model"
)

const debounceDelay = 200 * time.Millisecond

// watch builds once and then rebuilds whenever a file matching one of the
// config patterns is written, created or renamed. Build errors are logged
// and do not stop the loop.
func watch(ctx context.Context, opts *resolveOptions, graph model.Provider, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, dir := range watchDirs(opts.configs) {
		if err := fsw.Add(dir); err != nil {
			opts.logger.Warn("Failed to watch directory", "path", dir, "error", err)
			continue
		}

		opts.logger.Debug("Watching directory", "path", dir)
	}

	rebuild := func() {
		if err := opts.run(graph, stdout); err != nil {
			opts.logger.Error("Build failed", "error", err)
			return
		}

		opts.logger.Info("Build finished")
	}

	rebuild()

	timer := time.NewTimer(debounceDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if !matchesAny(opts.configs, event.Name) {
				continue
			}

			opts.logger.Debug("Config change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounceDelay)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			opts.logger.Error("Watcher error", "error", err)

		case <-timer.C:
			rebuild()
		}
	}
}

// watchDirs returns the static base directory of each pattern. Directories
// below it are not watched, so "**" only picks up files at the top level.
func watchDirs(patterns []string) []string {
	var dirs []string

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		dirs = append(dirs, filepath.FromSlash(base))
	}

	return common.Unique(dirs)
}

func matchesAny(patterns []string, path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))

	for _, pattern := range patterns {
		ok, err := doublestar.Match(filepath.ToSlash(filepath.Clean(pattern)), path)
		if err == nil && ok {
			return true
		}
	}

	return false
}
