package commands

import (
	"strconv"
	"time"
)

// helper functions for formatting integers and timestamps
func i(i int64) string {
	return strconv.FormatInt(i, 10)
}

// t renders an epoch timestamp, falling back to the raw text when the
// timestamp never parsed
func t(epoch int64, raw string) string {
	if epoch == 0 {
		return raw
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02 15:04:05")
}
