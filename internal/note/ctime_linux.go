//go:build linux

package note

import (
	"os"
	"syscall"
	"time"
)

// createdTime approximates a file's creation time. Linux does not expose
// birth time through os.FileInfo, so the inode change time is used; for
// freshly created notes the two coincide.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
