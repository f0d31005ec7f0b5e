package billing

import "errors"

// ErrQuotaExceeded is returned by CheckLimit when the usage count inside the
// feature's window has reached the merchant's plan limit. User-correctable by
// waiting for the window to roll or upgrading.
var ErrQuotaExceeded = errors.New("quota exceeded")
