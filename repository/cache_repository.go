package repository

// CacheRepository stores encoded calculation results by key. A miss and an
// unreachable backend both read as not found; callers treat Set failures as
// non-fatal.
type CacheRepository interface {
	Get(key string) (value string, found bool)
	Set(key, value string) error
}
