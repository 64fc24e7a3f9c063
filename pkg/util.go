package pkg

import (
	"os"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	return false, err
}

// RoundedMinutes converts a duration in milliseconds to whole
// minutes, rounding to the nearest minute.
func RoundedMinutes(millis int64) int {
	return int((millis + 30_000) / 60_000)
}
