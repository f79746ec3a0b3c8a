package constants

import "os"

const (
	// AppName is the default application namespace used for config, cache and temporary file names.
	AppName = "pathkit"

	// DefaultConfigFilename is the name of the configuration file inside the config directory.
	DefaultConfigFilename = "config.yaml"

	// DefaultHistoryFilename is the name of the history file inside the config directory.
	DefaultHistoryFilename = "history"
)

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// PrivateFilePermissions sets the permissions for temporary files: (rw-------).
	PrivateFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	// Owner: read, write, and execute;
	// Group: read and execute;
	// Others: read and execute.
	DefaultFolderPermissions os.FileMode = 0o755

	// PrivateFolderPermissions sets the permissions for parent folders created by path building: (rwx------).
	PrivateFolderPermissions os.FileMode = 0o700
)
