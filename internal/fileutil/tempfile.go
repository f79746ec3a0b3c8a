package fileutil

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oshokin/pathkit/internal/constants"
)

// CreateTempFile writes content to a new, uniquely named file in the temporary directory
// and returns its path. The caller owns the file and must remove it.
// On failure no partial file is left behind and the error names the attempted path.
func (u *Util) CreateTempFile(content string) (string, error) {
	path := filepath.Join(u.env.TempDir(), u.appName+"-"+uuid.New().String())

	file, err := u.fs.OpenFile(path, createNewFileOptions, constants.PrivateFilePermissions)
	if err != nil {
		return "", fmt.Errorf("could not create temporary file %s: %w", path, err)
	}

	written, err := file.WriteString(content)
	if err == nil && written < len(content) {
		err = fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, written, len(content))
	}

	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = u.fs.Remove(path)

		return "", fmt.Errorf("could not write temporary file %s: %w", path, err)
	}

	return path, nil
}
