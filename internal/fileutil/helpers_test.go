package fileutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"

	mock_fileutil "github.com/oshokin/pathkit/internal/fileutil/mocks"
)

const (
	testHomeDir   = "/home/tester"
	testConfigDir = "/home/tester/.config"
	testCacheDir  = "/home/tester/.cache"
	testWorkDir   = "/work"
	testTempDir   = "/tmp"
)

// newTestUtil creates a Util over an in-memory filesystem and a mocked environment.
func newTestUtil(t *testing.T, options ...Option) (*Util, afero.Fs, *mock_fileutil.MockEnvironment) {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := mock_fileutil.NewMockEnvironment(ctrl)
	fs := afero.NewMemMapFs()

	return New(fs, env, options...), fs, env
}

// shortWriteFs wraps a filesystem so that every opened file writes only half of a string.
type shortWriteFs struct {
	afero.Fs
}

func (f shortWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	return shortWriteFile{File: file}, nil
}

type shortWriteFile struct {
	afero.File
}

func (f shortWriteFile) WriteString(s string) (int, error) {
	return f.File.WriteString(s[:len(s)/2])
}
