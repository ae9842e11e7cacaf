package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubCommands records external commands instead of running them
func stubCommands(t *testing.T, fail bool) *[][]string {
	t.Helper()
	var calls [][]string

	origRunner, origLook := commandRunner, lookPath
	commandRunner = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		if fail {
			return errors.New("exit status 1")
		}
		return nil
	}
	lookPath = func(file string) (string, error) {
		return "", errors.New("not found")
	}
	t.Cleanup(func() {
		commandRunner, lookPath = origRunner, origLook
	})
	return &calls
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "data", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}

	if err := CreateDirectoryIfNotExists(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}

func TestGetDefaultDataDir(t *testing.T) {
	dataDir, err := GetDefaultDataDir()
	if err != nil {
		t.Fatalf("Failed to get data directory: %v", err)
	}

	if filepath.Base(dataDir) != DataDirName {
		t.Errorf("Expected directory to end with %q, got: %s", DataDirName, dataDir)
	}
	if filepath.Base(filepath.Dir(dataDir)) != AppDirName {
		t.Errorf("Expected parent directory %q, got: %s", AppDirName, dataDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	calls := stubCommands(t, false)
	nonExistentFile := filepath.Join(t.TempDir(), "products.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
	if len(*calls) != 0 {
		t.Errorf("No command should run for a missing file, got %v", *calls)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	stubCommands(t, false)
	if err := OpenFileInManager(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}

func TestOpenFolderInManager_RunsCommand(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skip("unsupported platform")
	}
	calls := stubCommands(t, false)
	dir := t.TempDir()

	if err := OpenFolderInManager(dir); err != nil {
		t.Fatalf("OpenFolderInManager failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	last := (*calls)[0]
	if last[len(last)-1] != dir {
		t.Errorf("Expected command to target %s, got %v", dir, last)
	}
}

func TestOpenFolderInManager_LinuxNoManager(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("linux only")
	}
	stubCommands(t, true)

	err := OpenFolderInManager(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no suitable file manager") {
		t.Errorf("Expected file manager error, got %v", err)
	}
}

func TestOpenFileWithDefaultApp(t *testing.T) {
	if runtime.GOOS != OSLinux && runtime.GOOS != OSDarwin && runtime.GOOS != OSWindows {
		t.Skip("unsupported platform")
	}
	calls := stubCommands(t, false)

	path := filepath.Join(t.TempDir(), "categories.txt")
	if err := os.WriteFile(path, []byte("Waffles\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := OpenFileWithDefaultApp(path); err != nil {
		t.Fatalf("OpenFileWithDefaultApp failed: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
}
