package comments

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/creenv/create-creenv/internal/output"
)

// sniffLen is how much of a file is inspected to decide whether it is binary.
const sniffLen = 8000

// StripTree strips comments from every text file under root, rewriting files
// in place. It returns the number of files that changed. Files with a NUL byte
// in their first 8000 bytes are treated as binary and skipped.
func StripTree(fs afero.Fs, root string) (int, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", root, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a folder", root)
	}

	changed := 0
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if isBinary(data) {
			output.Debug("skipping binary file", "path", path)
			return nil
		}

		stripped := Strip(data)
		if bytes.Equal(stripped, data) {
			return nil
		}

		if err := afero.WriteFile(fs, path, stripped, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		output.Debug("comments removed", "path", path)
		changed++
		return nil
	})

	return changed, err
}

func isBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
