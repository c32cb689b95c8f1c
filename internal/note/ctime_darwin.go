//go:build darwin

package note

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the file's birth time where macOS records one.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
