package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:levels
var levelFS embed.FS

// Levels returns the filesystem the game loads levels from and the directory
// within it to scan. An override directory (the -levels flag or levels_dir in
// the config file) takes priority over the embedded maps, which lets level
// edits be tested without rebuilding the binary.
func Levels(overrideDir string) (fs.FS, string) {
	if overrideDir != "" {
		return os.DirFS(overrideDir), "."
	}
	return levelFS, "levels"
}
