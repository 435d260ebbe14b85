package model

// Visit is one queued visit to account for. MaxClicks carries the cap
// from the snapshot that was served, so the accountant can invalidate
// the cached copy when the counter reaches it.
type Visit struct {
	ShortCode string
	MaxClicks *int64
}
