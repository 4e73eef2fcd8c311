// File: utils/constants.go
package utils

import "time"

// AdmissionLockPrefix is the prefix used for Redis admission lock keys.
const AdmissionLockPrefix = "lock:admission:"

// AdmissionLockTTL bounds how long a crashed instance can hold an admission lock.
const AdmissionLockTTL = 15 * time.Second
