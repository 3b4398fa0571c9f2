// Package wizard provides the interactive version-file picker used by
// `vdiff compare --interactive`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// versionFileExts are the file extensions recognized as version files.
// Compressed variants (.gz, .zst) of these are recognized too.
var versionFileExts = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// DiscoverVersionFiles returns the version files directly under dir,
// sorted by name. It does not recurse.
func DiscoverVersionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isVersionFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func isVersionFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".gz" || ext == ".zst" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(name, ext)))
	}
	return versionFileExts[ext]
}

// PickVersionFiles shows a multi-select over the candidate files and
// returns the user's selection. At least two files must be selected
// for a comparison to make sense.
func PickVersionFiles(in io.Reader, out io.Writer, candidates []string) ([]string, error) {
	if len(candidates) < 2 {
		return nil, fmt.Errorf("need at least 2 version files to compare, found %d", len(candidates))
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Versions to compare").
				Description("Pick two or more version files").
				Options(fileOptions(candidates)...).
				Value(&selected).
				Validate(validateSelection),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return selected, nil
}

func fileOptions(candidates []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		opts = append(opts, huh.NewOption(filepath.Base(c), c))
	}
	return opts
}

func validateSelection(selected []string) error {
	if len(selected) < 2 {
		return fmt.Errorf("select at least 2 versions")
	}
	return nil
}
