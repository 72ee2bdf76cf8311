// Package discover walks a directory tree and collects the source files
// the counting engine should process.
package discover

import (
	"io/fs"
	"path/filepath"

	"github.com/kavinraj-m/codefreq/pkg/logger"
)

// Only C source and header files are counted. The allow-set is fixed;
// it is not a configuration knob.
var sourceExts = map[string]struct{}{
	".c": {},
	".h": {},
}

// Files returns the paths of all regular files under root whose extension
// is in the allow-set. Entries that fail during traversal (permission
// errors, dangling links) are skipped so that a partially readable tree
// still yields results. Non-regular entries are excluded; symlinks are not
// followed.
func Files(root string) []string {
	log := logger.WithComponent("discover")
	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping entry", "path", path, "error", err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := sourceExts[filepath.Ext(path)]; ok {
			files = append(files, path)
		}
		return nil
	})
	return files
}
