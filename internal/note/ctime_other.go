//go:build !linux && !darwin

package note

import (
	"os"
	"time"
)

func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
