package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID = "build_id"
	KeyPage    = "page"
	KeyURL     = "url"
	KeyPath    = "path"
	KeyRule    = "rule"
	KeyTitle   = "title"
	KeyCount   = "count"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Page(name string) slog.Attr  { return slog.String(KeyPage, name) }
func URL(u string) slog.Attr      { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Rule(r string) slog.Attr     { return slog.String(KeyRule, r) }
func Title(t string) slog.Attr    { return slog.String(KeyTitle, t) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
