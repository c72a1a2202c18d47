package commands

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss"
	"github.com/agiangrant/tailcss/config"
)

// debounce collects the burst of events one save produces.
const debounce = 50 * time.Millisecond

func newWatchCmd(root *rootFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the CSS whenever content or the configuration changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root, false)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck

			flags.apply(cmd, e)
			g, err := e.generator(flags.jobs)
			if err != nil {
				return err
			}
			w := &watcher{cmd: cmd, flags: flags, root: root, env: e, gen: g}
			return w.run(cmd.Context())
		},
	}
	flags.register(cmd)

	return cmd
}

type watcher struct {
	cmd   *cobra.Command
	flags *buildFlags
	root  *rootFlags
	env   *env
	gen   *tailcss.Generator
	fs    *fsnotify.Watcher

	configHash uint64
}

func (w *watcher) run(ctx context.Context) error {
	var err error
	if w.fs, err = fsnotify.NewWatcher(); err != nil {
		return err
	}
	defer w.fs.Close()

	w.watchContent()
	if w.env.path != "" {
		// The directory, not the file: editors replace files on save.
		if err := w.fs.Add(filepath.Dir(w.env.path)); err != nil {
			return err
		}
		w.configHash = fingerprint(w.env.path)
	}

	start := time.Now()
	css, err := w.gen.Generate(ctx)
	if err != nil {
		return err
	}
	w.emit(css, start)

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.addTree(ev.Name)
				}
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.env.log.Warn("Watcher error", zap.Error(err))
		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			w.rebuild(ctx, paths)
		}
	}
}

func (w *watcher) rebuild(ctx context.Context, paths []string) {
	start := time.Now()

	var (
		css string
		err error
	)
	if w.configChanged(paths) {
		w.env.log.Info("Configuration changed, reloading", zap.String("path", w.env.path))
		cfg, lerr := config.Load(w.env.path)
		if lerr == nil {
			if w.root.logLevel != "" {
				cfg.Logging.Level = w.root.logLevel
			}
			w.env.cfg = cfg
			w.flags.apply(w.cmd, w.env)
			lerr = w.gen.Reload(cfg)
		}
		if lerr != nil {
			w.env.log.Error("Configuration not reloaded", zap.Error(lerr))
			return
		}
		w.watchContent()
		css, err = w.gen.Generate(ctx)
	} else {
		var content []string
		for _, p := range paths {
			if w.gen.IsContent(p) {
				content = append(content, p)
			}
		}
		if len(content) == 0 {
			return
		}
		w.env.log.Debug("Content changed", zap.Strings("paths", content))
		css, err = w.gen.Update(ctx, content)
	}
	if err != nil {
		if ctx.Err() == nil {
			w.env.log.Error("Rebuild failed", zap.Error(err))
		}
		return
	}
	w.emit(css, start)
}

func (w *watcher) configChanged(paths []string) bool {
	if w.env.path == "" {
		return false
	}
	for _, p := range paths {
		if filepath.Clean(p) != w.env.path {
			continue
		}
		if h := fingerprint(w.env.path); h != w.configHash {
			w.configHash = h
			return true
		}
	}
	return false
}

func (w *watcher) emit(css string, start time.Time) {
	written, err := writeOutput(w.cmd.OutOrStdout(), w.flags.output, css)
	if err != nil {
		w.env.log.Error("Output not written", zap.Error(err))
		return
	}
	report(w.cmd.ErrOrStderr(), w.gen, w.flags.output, css, written, time.Since(start))
	logUnmatched(w.env.log, w.gen)
}

func (w *watcher) watchContent() {
	for _, dir := range w.gen.ContentDirs() {
		w.addTree(dir)
	}
}

// addTree watches dir and every directory below it; fsnotify watches are
// not recursive.
func (w *watcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			w.env.log.Debug("Not watching", zap.String("dir", path), zap.Error(err))
		}
		return nil
	})
}

func skipDir(name string) bool {
	switch name {
	case ".git", ".hg", ".svn", "node_modules":
		return true
	}
	return false
}
