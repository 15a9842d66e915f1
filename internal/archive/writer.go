package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/klauspost/compress/zip"
)

// Extension of the archives produced by [Writer].
const Ext = ".zip"

// Writes install trees into a zip archive.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	zw      *zip.Writer     // Underlying zip stream.
	file    *os.File        // Archive file, when created with [Create].
	root    string          // Common top-level directory. May be empty.
	buf     bytes.Buffer    // Shared buffer for file contents.
	names   map[string]bool // Entry names written so far.
	entries []string        // Entry names in write order.
	closed  bool            // Whether Close has been called.
}

// Creates the archive file at path and returns a [Writer] for it.
//
// Every entry is placed below root; an empty root puts target
// subdirectories at the top level of the archive.
func Create(path, root string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	w := New(f, root)
	w.file = f
	return w, nil
}

// Returns a [Writer] that writes the archive to w.
func New(w io.Writer, root string) *Writer {
	return &Writer{
		zw:    zip.NewWriter(w),
		root:  strings.Trim(filepath.ToSlash(root), "/"),
		names: make(map[string]bool),
	}
}

// Names of the entries written so far, in write order. Directory entries end
// with "/".
func (w *Writer) Entries() []string {
	return append([]string(nil), w.entries...)
}

// Archive path of a subdirectory-relative path, using forward slashes.
func (w *Writer) entryName(subdir, rel string) string {
	return path.Join(w.root, subdir, filepath.ToSlash(rel))
}

// Writes an explicit directory entry for a target subdirectory.
//
// Must be called before [Writer.AddTree] for the same subdirectory, so the
// subdirectory is present even when the install tree is empty.
func (w *Writer) AddDir(subdir string) error {
	return w.addDir(w.entryName(subdir, ""), nil)
}

// Adds every file and directory below installRoot to the archive under
// subdir.
//
// The install root itself has an empty relative path and is skipped; its
// entry is the one written by [Writer.AddDir]. Any error aborts the walk.
func (w *Writer) AddTree(installRoot, subdir string) error {
	if w.closed {
		return ErrClosed
	}

	prefix := w.entryName(subdir, "")
	if !w.names[prefix+"/"] {
		return fmt.Errorf("%w: %s", ErrMissingDir, prefix)
	}

	err := filepath.WalkDir(installRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(installRoot, p)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		name := w.entryName(subdir, rel)

		switch {
		case d.IsDir():
			return w.addDir(name, info)
		case info.Mode().IsRegular():
			return w.addFile(name, p, info)
		default:
			slog.Warn("skipping irregular file", "path", p, "mode", info.Mode().String())
			return nil
		}
	})
	if err != nil {
		if isArchiveError(err) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrArchive, installRoot, err)
	}

	return nil
}

// Records a new entry name, rejecting duplicates.
func (w *Writer) claim(name string) error {
	if w.closed {
		return ErrClosed
	}
	if w.names[name] {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}
	w.names[name] = true
	w.entries = append(w.entries, name)
	return nil
}

// Writes a directory entry. info may be nil for synthetic directories.
func (w *Writer) addDir(name string, info fs.FileInfo) error {
	name += "/"
	if err := w.claim(name); err != nil {
		return err
	}

	slog.Info("adding", "path", name)

	header := &zip.FileHeader{Name: name, Method: zip.Store}
	header.SetMode(fs.ModeDir | paths.DefaultDirMode)
	if info != nil {
		header.Modified = info.ModTime()
	}

	if _, err := w.zw.CreateHeader(header); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, name, err)
	}
	return nil
}

// Copies a file into the archive through the shared buffer.
func (w *Writer) addFile(name, hostPath string, info fs.FileInfo) error {
	if err := w.claim(name); err != nil {
		return err
	}

	slog.Info("adding", "path", name)

	if err := w.readFile(hostPath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, hostPath, err)
	}
	defer w.buf.Reset()

	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	}
	header.SetMode(info.Mode().Perm())

	fw, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, name, err)
	}
	if _, err := fw.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, name, err)
	}

	return nil
}

// Reads a whole file into the shared buffer.
func (w *Writer) readFile(hostPath string) error {
	f, err := os.Open(hostPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w.buf.Reset()
	_, err = w.buf.ReadFrom(f)
	return err
}

// Finalizes the archive by writing the central directory.
//
// Only the first call has an effect. An archive that was never closed has
// no central directory and cannot be read.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.zw.Close()
	if w.file != nil {
		err = errors.Join(err, w.file.Close())
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	return nil
}

// Reports whether err already carries one of this package's sentinels.
func isArchiveError(err error) bool {
	return errors.Is(err, ErrArchive) ||
		errors.Is(err, ErrDuplicateEntry) ||
		errors.Is(err, ErrClosed)
}

// Releases the archive file without finalizing it.
//
// The partially written file is left on disk without a central directory.
// Used when a run fails; a later Close is a no-op.
func (w *Writer) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
