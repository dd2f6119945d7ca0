package texture

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/toxichemicals/GO/courtyard/internal/imageio"
)

// Reloader keeps a 2D texture in step with its image file. The texture is
// sampled from its base level only.
type Reloader struct {
	path  string
	opts  imageio.Options
	tex   Texture
	dirty bool

	// watcher observes the file's directory so editors that replace the
	// file by rename are seen as well.
	watcher *fsnotify.Watcher

	upload func(id uint32, img *imageio.Image, format uint32, filter Filter)
}

// NewReloader loads path once and starts watching it.
func NewReloader(path string, opts imageio.Options) (*Reloader, error) {
	path = filepath.Clean(path)
	w, err := watchDir(path)
	if err != nil {
		return nil, err
	}
	t, err := load2D(path, opts, Linear)
	if err != nil {
		w.Close()
		return nil, err
	}
	return &Reloader{path: path, opts: opts, tex: t, watcher: w, upload: upload2D}, nil
}

func watchDir(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher for %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return w, nil
}

// drain consumes pending watcher events without blocking and marks the
// texture dirty when its file was written or recreated.
func (r *Reloader) drain() error {
	if r.watcher == nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-r.watcher.Events:
			if !ok {
				r.watcher = nil
				return nil
			}
			if filepath.Clean(ev.Name) == r.path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				r.dirty = true
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				r.watcher = nil
				return nil
			}
			if err != nil {
				return fmt.Errorf("watching %s: %w", r.path, err)
			}
		default:
			return nil
		}
	}
}

// Refresh re-uploads the image into the same handle if the file changed
// since the last call. A failed decode keeps the previous pixels; the next
// change to the file is tried again.
func (r *Reloader) Refresh() (bool, error) {
	if err := r.drain(); err != nil {
		return false, err
	}
	if !r.dirty {
		return false, nil
	}
	r.dirty = false

	img, err := imageio.Decode(r.path, r.opts)
	if err != nil {
		return false, err
	}
	format, err := Format(img.Channels)
	if err != nil {
		return false, fmt.Errorf("texture %s: %w", r.path, err)
	}
	r.upload(r.tex.ID, img, format, Linear)
	return true, nil
}

func (r *Reloader) Texture() Texture {
	return r.tex
}

func (r *Reloader) Path() string {
	return r.path
}

// Delete stops watching and frees the texture.
func (r *Reloader) Delete() {
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
	r.tex.Delete()
}
