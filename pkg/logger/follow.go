// pkg/logger/follow.go

package logger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FollowLogFile copies lines appended to path after the call to w until ctx
// is done. format, when non-nil, is applied to each line. The parent
// directory is watched so the file may be created or rotated while following.
func FollowLogFile(ctx context.Context, path string, w io.Writer, format func(string) string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	pos := fileSize(path)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := copyNewLines(path, &pos, w, format); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		case <-ctx.Done():
			return nil
		}
	}
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}

// copyNewLines writes every complete line after *pos and advances *pos past
// them. A trailing partial line is left for the next write event.
func copyNewLines(path string, pos *int64, w io.Writer, format func(string) string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if fi, err := f.Stat(); err == nil && fi.Size() < *pos {
		// truncated or replaced
		*pos = 0
	}
	if _, err := f.Seek(*pos, io.SeekStart); err != nil {
		return fmt.Errorf("seek log file %s: %w", path, err)
	}

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read log file %s: %w", path, err)
		}
		*pos += int64(len(line))

		line = strings.TrimRight(line, "\r\n")
		if format != nil {
			line = format(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
}
