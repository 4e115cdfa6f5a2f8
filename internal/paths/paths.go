package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "appicon"
	ConfigFileName = "appicon-config.json"
	LogFileName    = "history.log"
	DBFileName     = "history.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// Layout of the generated assets, relative to the output root.
const (
	BaseIcon   = "frontend/assets/icon.png"
	ResDir     = "frontend/android/app/src/main/res"
	SquareName = "ic_launcher.png"
	RoundName  = "ic_launcher_round.png"
)

// BaseIconPath returns where the full-size base icon is written under root.
func BaseIconPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(BaseIcon))
}

// LauncherDir returns the resource directory for one resolution label,
// e.g. <root>/frontend/android/app/src/main/res/mipmap-hdpi.
func LauncherDir(root, label string) string {
	return filepath.Join(root, filepath.FromSlash(ResDir), label)
}

func SquarePath(dir string) string { return filepath.Join(dir, SquareName) }

func RoundPath(dir string) string { return filepath.Join(dir, RoundName) }

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for appicon:
//   - Windows: %APPDATA%\appicon
//   - Unix:    ~/.config/appicon
//
// Falls back to os.TempDir()/appicon if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
