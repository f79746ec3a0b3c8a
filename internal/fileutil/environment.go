package fileutil

//go:generate $MOCKGEN -source=environment.go -destination=mocks/environment_mock.go

import "os"

// Environment abstracts the process-wide state the helpers depend on.
type Environment interface {
	// Getenv returns the value of the environment variable named by key.
	Getenv(key string) string
	// UserHomeDir returns the platform-reported home directory.
	UserHomeDir() (string, error)
	// UserConfigDir returns the platform base directory for user configuration.
	UserConfigDir() (string, error)
	// UserCacheDir returns the platform base directory for user caches.
	UserCacheDir() (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// TempDir returns the directory used for temporary files.
	TempDir() string
}

// OSEnvironment is the Environment backed by the os package.
type OSEnvironment struct{}

// NewOSEnvironment creates and returns a new instance of OSEnvironment.
func NewOSEnvironment() *OSEnvironment {
	return new(OSEnvironment)
}

// Getenv returns the value of the environment variable named by key.
func (*OSEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

// UserHomeDir returns the platform-reported home directory.
func (*OSEnvironment) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// UserConfigDir returns the platform base directory for user configuration.
func (*OSEnvironment) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// UserCacheDir returns the platform base directory for user caches.
func (*OSEnvironment) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

// Getwd returns the current working directory.
func (*OSEnvironment) Getwd() (string, error) {
	return os.Getwd()
}

// TempDir returns the directory used for temporary files.
func (*OSEnvironment) TempDir() string {
	return os.TempDir()
}
