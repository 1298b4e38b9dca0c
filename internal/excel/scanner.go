package excel

import (
	"os"
	"path/filepath"
	"strings"
)

// CandidateDirs builds the ordered list of directories to search for
// workbooks: the command argument when given (a file argument contributes its
// parent directory), the current working directory, the executable's
// directory, then any configured extra roots. The result is de-duplicated by
// resolved path and filtered to directories that exist.
func CandidateDirs(arg string, extraDirs []string) []string {
	var dirs []string

	if arg != "" {
		if abs, err := filepath.Abs(arg); err == nil {
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				dirs = append(dirs, abs)
			} else {
				dirs = append(dirs, filepath.Dir(abs))
			}
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	if exeDir, err := ExeDir(); err == nil {
		dirs = append(dirs, exeDir)
	}

	for _, d := range extraDirs {
		if abs, err := filepath.Abs(d); err == nil {
			dirs = append(dirs, abs)
		}
	}

	return dedupeExistingDirs(dirs)
}

// ExeDir returns the directory containing the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func dedupeExistingDirs(dirs []string) []string {
	seen := make(map[string]bool)
	var uniq []string
	for _, d := range dirs {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			continue
		}
		key := resolvePath(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, d)
	}
	return uniq
}

// resolvePath canonicalizes a path for de-duplication. Symlink resolution can
// fail on dangling links; fall back to the absolute form, then the raw path.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if abs, err := filepath.Abs(resolved); err == nil {
			return abs
		}
		return resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// DiscoverWorkbooks lists the candidate workbooks across the given search
// roots in order: every entry matching *.xls* that is not a directory, not a
// previous output file, and not an Office ~$ lock file. Files seen through
// more than one root (or through symlinked roots) are reported once.
func DiscoverWorkbooks(dirs []string, outputSuffix string) []string {
	if outputSuffix == "" {
		outputSuffix = DefaultOutputSuffix
	}
	excludeSuffix := outputSuffix + ".xlsx"

	seen := make(map[string]bool)
	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				continue
			}
			if matched, _ := filepath.Match("*.xls*", name); !matched {
				continue
			}
			if strings.HasSuffix(name, excludeSuffix) || strings.HasPrefix(name, "~$") {
				continue
			}
			path := filepath.Join(dir, name)
			key := resolvePath(path)
			if seen[key] {
				continue
			}
			seen[key] = true
			files = append(files, path)
		}
	}
	return files
}
