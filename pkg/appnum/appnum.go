package appnum

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Prefix identifies SchoolDekho loan applications.
const Prefix = "SDL"

// New returns an application number: prefix + last 8 digits of the unix-millis
// timestamp + zero-padded 3-digit random suffix (14 chars total). Uniqueness
// is only probabilistic here; the caller must rely on the database unique
// constraint and regenerate on conflict.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return fmt.Sprintf("%s%s%03d", Prefix, ts, rand.Intn(1000))
}
