package fsys

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestSandbox(t *testing.T) *Sandbox {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestCreateFolderAndFile(t *testing.T) {
	s := newTestSandbox(t)

	dir, err := s.CreateFolder(s.BaseFolder(), "sheets")
	if err != nil {
		t.Fatalf("CreateFolder() error: %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("created folder missing: %v", err)
	}

	fname, err := s.CreateFile(dir, "sheet1.xml", []byte("<worksheet/>"))
	if err != nil {
		t.Fatalf("CreateFile() error: %v", err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	if string(data) != "<worksheet/>" {
		t.Errorf("file contents = %q", data)
	}
}

func TestBoundaryViolations(t *testing.T) {
	s := newTestSandbox(t)
	outside := t.TempDir()

	t.Run("create file outside base", func(t *testing.T) {
		if _, err := s.CreateFile(outside, "x.txt", []byte("data")); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("CreateFile() error = %v, want ErrOutsideBase", err)
		}
	})

	t.Run("create folder outside base", func(t *testing.T) {
		if _, err := s.CreateFolder(outside, "dir"); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("CreateFolder() error = %v, want ErrOutsideBase", err)
		}
	})

	t.Run("delete outside base", func(t *testing.T) {
		victim := filepath.Join(outside, "victim.txt")
		if err := os.WriteFile(victim, []byte("keep me"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := s.DeleteFile(victim); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("DeleteFile() error = %v, want ErrOutsideBase", err)
		}
		if _, err := os.Stat(victim); err != nil {
			t.Errorf("file outside base was removed")
		}
		if err := s.DeleteFolderRecursively(outside); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("DeleteFolderRecursively() error = %v, want ErrOutsideBase", err)
		}
	})

	t.Run("escape through dot-dot", func(t *testing.T) {
		sneaky := filepath.Join(s.BaseFolder(), "..", filepath.Base(outside))
		if _, err := s.CreateFile(sneaky, "x.txt", []byte("data")); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("CreateFile() error = %v, want ErrOutsideBase", err)
		}
	})

	t.Run("escape through symlink", func(t *testing.T) {
		link := filepath.Join(s.BaseFolder(), "link")
		if err := os.Symlink(outside, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		if _, err := s.CreateFile(link, "x.txt", []byte("data")); !errors.Is(err, ErrOutsideBase) {
			t.Errorf("CreateFile() through symlink error = %v, want ErrOutsideBase", err)
		}
	})

	t.Run("unresolvable parent", func(t *testing.T) {
		missing := filepath.Join(s.BaseFolder(), "no", "such", "dir")
		if _, err := s.CreateFile(missing, "x.txt", nil); !errors.Is(err, ErrNotResolved) {
			t.Errorf("CreateFile() error = %v, want ErrNotResolved", err)
		}
	})
}

func TestSimilarlyNamedSibling(t *testing.T) {
	parent := t.TempDir()
	base := filepath.Join(parent, "work")
	evil := filepath.Join(parent, "work-evil")
	for _, d := range []string{base, evil} {
		if err := os.Mkdir(d, 0700); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	s, err := New(base)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// "work-evil" shares the "work" prefix but is not under the base
	if _, err := s.CreateFile(evil, "x.txt", nil); !errors.Is(err, ErrOutsideBase) {
		t.Errorf("CreateFile() in prefix-sharing sibling error = %v, want ErrOutsideBase", err)
	}
}

func TestDeleteFileMissingIsNoop(t *testing.T) {
	s := newTestSandbox(t)
	if err := s.DeleteFile(filepath.Join(s.BaseFolder(), "never-existed.txt")); err != nil {
		t.Errorf("DeleteFile() on missing file = %v, want nil", err)
	}
}

func TestDeleteFolderRecursively(t *testing.T) {
	s := newTestSandbox(t)

	root, err := s.CreateFolder(s.BaseFolder(), "doc")
	if err != nil {
		t.Fatalf("CreateFolder() error: %v", err)
	}
	inner, err := s.CreateFolder(root, "xl")
	if err != nil {
		t.Fatalf("CreateFolder() error: %v", err)
	}
	deepest, err := s.CreateFolder(inner, "worksheets")
	if err != nil {
		t.Fatalf("CreateFolder() error: %v", err)
	}
	for dir, name := range map[string]string{
		root:    "content.xml",
		inner:   "styles.xml",
		deepest: "sheet1.xml",
	} {
		if _, err := s.CreateFile(dir, name, []byte("x")); err != nil {
			t.Fatalf("CreateFile() error: %v", err)
		}
	}

	if err := s.DeleteFolderRecursively(root); err != nil {
		t.Fatalf("DeleteFolderRecursively() error: %v", err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("folder tree still present after recursive delete")
	}
}

func TestNewTemp(t *testing.T) {
	parent := t.TempDir()

	s1, err := NewTemp(parent)
	if err != nil {
		t.Fatalf("NewTemp() error: %v", err)
	}
	s2, err := NewTemp(parent)
	if err != nil {
		t.Fatalf("NewTemp() error: %v", err)
	}
	if s1.BaseFolder() == s2.BaseFolder() {
		t.Errorf("two sessions share working folder %s", s1.BaseFolder())
	}
	for _, s := range []*Sandbox{s1, s2} {
		if err := s.DeleteFolderRecursively(s.BaseFolder()); err != nil {
			t.Errorf("cleanup of %s: %v", s.BaseFolder(), err)
		}
	}
}
