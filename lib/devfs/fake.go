// Copyright 2026 The uFPGA Authors
// SPDX-License-Identifier: Apache-2.0

package devfs

import (
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

type fakeKind int

const (
	fakeDirectory fakeKind = iota
	fakeRegular
	fakeSymlink
	fakeCharDevice
	fakeBlockDevice
)

type fakeEntry struct {
	kind   fakeKind
	data   []byte
	target string
	number DevNumber
}

// Fake is an in-memory [Namespace]. Parent directories are created
// implicitly. Symlinks are never followed: Readlink returns the stored
// target and ReadFile on a link fails. Safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	entries map[string]*fakeEntry
	opens   map[string]error
	handles int
}

// NewFake returns an empty namespace containing only "/".
func NewFake() *Fake {
	return &Fake{
		entries: map[string]*fakeEntry{"/": {kind: fakeDirectory}},
		opens:   make(map[string]error),
	}
}

// Mkdir creates a directory and its parents.
func (f *Fake) Mkdir(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(name, &fakeEntry{kind: fakeDirectory})
}

// WriteFile creates or replaces a regular file.
func (f *Fake) WriteFile(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(name, &fakeEntry{kind: fakeRegular, data: bytes.Clone(data)})
}

// Symlink creates a symbolic link at name pointing to target. The
// target need not exist.
func (f *Fake) Symlink(target, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(name, &fakeEntry{kind: fakeSymlink, target: target})
}

// Mknod creates a character device node. image is what positioned
// reads of the node return; reads beyond its end are short.
func (f *Fake) Mknod(name string, number DevNumber, image []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(name, &fakeEntry{kind: fakeCharDevice, number: number, data: bytes.Clone(image)})
}

// MknodBlock creates a block device node. Block devices never match a
// character device lookup even when their numbers coincide.
func (f *Fake) MknodBlock(name string, number DevNumber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(name, &fakeEntry{kind: fakeBlockDevice, number: number})
}

// Remove deletes name and everything beneath it.
func (f *Fake) Remove(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = path.Clean(name)
	for existing := range f.entries {
		if existing == name || strings.HasPrefix(existing, name+"/") {
			delete(f.entries, existing)
		}
	}
}

// FailOpen makes every later Open of name return err.
func (f *Fake) FailOpen(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens[path.Clean(name)] = err
}

// put stores entry at name, creating parent directories. Caller holds mu.
func (f *Fake) put(name string, entry *fakeEntry) {
	name = path.Clean("/" + name)
	for parent := path.Dir(name); ; parent = path.Dir(parent) {
		if _, exists := f.entries[parent]; !exists {
			f.entries[parent] = &fakeEntry{kind: fakeDirectory}
		}
		if parent == "/" {
			break
		}
	}
	f.entries[name] = entry
}

func (f *Fake) lookup(op, name string) (string, *fakeEntry, error) {
	name = path.Clean(name)
	entry, exists := f.entries[name]
	if !exists {
		return name, nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return name, entry, nil
}

// ReadDir implements [Namespace].
func (f *Fake) ReadDir(name string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, entry, err := f.lookup("readdir", name)
	if err != nil {
		return nil, err
	}
	if entry.kind != fakeDirectory {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	prefix := name + "/"
	if name == "/" {
		prefix = "/"
	}
	var names []string
	for existing := range f.entries {
		rest, found := strings.CutPrefix(existing, prefix)
		if !found || rest == "" || strings.Contains(rest, "/") {
			continue
		}
		names = append(names, rest)
	}
	sort.Strings(names)
	return names, nil
}

// Readlink implements [Namespace].
func (f *Fake) Readlink(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, entry, err := f.lookup("readlink", name)
	if err != nil {
		return "", err
	}
	if entry.kind != fakeSymlink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return entry.target, nil
}

// ReadFile implements [Namespace].
func (f *Fake) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, entry, err := f.lookup("open", name)
	if err != nil {
		return nil, err
	}
	if entry.kind != fakeRegular {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return bytes.Clone(entry.data), nil
}

// Node implements [Namespace].
func (f *Fake) Node(name string) (DevNumber, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, entry, err := f.lookup("lstat", name)
	if err != nil {
		return 0, false, err
	}
	if entry.kind != fakeCharDevice {
		return 0, false, nil
	}
	return entry.number, true, nil
}

// Open implements [Namespace]. The returned File reads a snapshot of
// the node's image taken at open time.
func (f *Fake) Open(name string) (File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, entry, err := f.lookup("open", name)
	if err != nil {
		return nil, err
	}
	if failure := f.opens[name]; failure != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: failure}
	}
	switch entry.kind {
	case fakeRegular, fakeCharDevice:
		f.handles++
		return &fakeFile{Reader: bytes.NewReader(bytes.Clone(entry.data)), owner: f}, nil
	default:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
}

// OpenHandles returns the number of Files opened and not yet closed.
func (f *Fake) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handles
}

type fakeFile struct {
	*bytes.Reader
	owner  *Fake
	closed bool
}

func (file *fakeFile) ReadAt(buffer []byte, offset int64) (int, error) {
	if file.closed {
		return 0, fs.ErrClosed
	}
	return file.Reader.ReadAt(buffer, offset)
}

func (file *fakeFile) Close() error {
	if file.closed {
		return fs.ErrClosed
	}
	file.closed = true
	file.owner.mu.Lock()
	file.owner.handles--
	file.owner.mu.Unlock()
	return nil
}
