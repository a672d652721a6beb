// pkg/xdg/types.go

package xdg

const (
	// Permission modes (in octal)
	DirPermPrivate         = 0700
	FilePermOwnerReadWrite = 0600
)
