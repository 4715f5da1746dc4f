package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.hql")
	expected := "SET hive.exec.parallel=true;"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.sql"))
	if err == nil {
		t.Error("ReadFile(nonexistent) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.hql")
	os.WriteFile(filePath, []byte("SET hive.exec.parallel=true;"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "test.hql" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "test.hql")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.hql
	//     sub/
	//       b.hql
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "a.hql"), []byte("SELECT 1;"), 0644)
	os.WriteFile(filepath.Join(sub, "b.hql"), []byte("SELECT 2;"), 0644)

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Walk found %d files, want 2: %v", len(files), files)
	}

	// Verify relative paths use OS separator
	found := map[string]bool{}
	for _, f := range files {
		found[filepath.ToSlash(f)] = true
	}

	if !found["a.hql"] {
		t.Error("Walk did not find a.hql")
	}
	if !found["sub/b.hql"] {
		t.Error("Walk did not find sub/b.hql")
	}
}
