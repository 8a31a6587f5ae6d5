package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/nightfall/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory holding the .tmx files, both inside the
// embedded filesystem and inside an override directory.
const LevelsDir = "levels"

// LevelLoader reads level templates from the embedded assets, or from a
// directory on disk when one is configured.
type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader over the embedded levels. A non-empty dir
// replaces them with dir/levels/*.tmx.
func NewLevelLoader(dir string) *LevelLoader {
	if dir != "" {
		return &LevelLoader{fsys: os.DirFS(dir)}
	}
	return &LevelLoader{fsys: assetFS}
}

// LoadLevels parses every level template, ordered by index.
func (l *LevelLoader) LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAll(l.fsys, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	return levels, nil
}
