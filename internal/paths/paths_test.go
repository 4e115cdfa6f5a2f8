package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLauncherPaths(t *testing.T) {
	dir := LauncherDir("/out", "mipmap-hdpi")
	want := filepath.Join("/out", "frontend", "android", "app", "src", "main", "res", "mipmap-hdpi")
	if dir != want {
		t.Errorf("LauncherDir = %q, want %q", dir, want)
	}
	if got := SquarePath(dir); got != filepath.Join(want, "ic_launcher.png") {
		t.Errorf("SquarePath = %q", got)
	}
	if got := RoundPath(dir); got != filepath.Join(want, "ic_launcher_round.png") {
		t.Errorf("RoundPath = %q", got)
	}
}

func TestBaseIconPath(t *testing.T) {
	got := BaseIconPath("root")
	want := filepath.Join("root", "frontend", "assets", "icon.png")
	if got != want {
		t.Errorf("BaseIconPath = %q, want %q", got, want)
	}
}

func TestAtomicWriteCreatesParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.bin")
	if err := AtomicWrite(path, []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(path, []byte("two")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", data, "two")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestDataDirUsesAPPDATA(t *testing.T) {
	t.Setenv("APPDATA", "/fake/appdata")
	got := DataDir()
	want := filepath.Join("/fake/appdata", AppDirName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestDataDirFallsBackWithoutAPPDATA(t *testing.T) {
	t.Setenv("APPDATA", "")
	got := DataDir()

	// Either ~/.config/appicon or the temp dir; both end with the app name.
	if filepath.Base(got) != AppDirName {
		t.Errorf("DataDir() = %q, expected base dir %q", got, AppDirName)
	}
}
