package tracer

import (
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// FDTable tracks the paths behind a process's open file descriptors. It is
// fed from decoded open/openat/dup results and consulted when resolving
// dirfd-relative paths. Fork copies the table; exec keeps it.
type FDTable struct {
	mu    sync.RWMutex
	paths map[int]string
}

func NewFDTable() *FDTable {
	return &FDTable{paths: make(map[int]string)}
}

func (t *FDTable) Set(fd int, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths[fd] = path
}

func (t *FDTable) Get(fd int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.paths[fd]
	return p, ok
}

func (t *FDTable) Close(fd int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.paths, fd)
}

func (t *FDTable) Dup(oldfd, newfd int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.paths[oldfd]; ok {
		t.paths[newfd] = p
	} else {
		delete(t.paths, newfd)
	}
}

func (t *FDTable) Clone() *FDTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	paths := make(map[int]string, len(t.paths))
	for fd, p := range t.paths {
		paths[fd] = p
	}
	return &FDTable{paths: paths}
}

// ResolveAt turns a dirfd-relative path into an absolute one. Absolute
// paths pass through; AT_FDCWD and unknown dirfds resolve against cwd.
func (t *FDTable) ResolveAt(dirfd int, path string, cwd string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if dirfd != unix.AT_FDCWD {
		if base, ok := t.Get(dirfd); ok {
			return filepath.Clean(filepath.Join(base, path))
		}
	}
	return filepath.Clean(filepath.Join(cwd, path))
}
