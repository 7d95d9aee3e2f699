package minio

import "time"

// timeNow is swappable in tests.
var timeNow = time.Now
