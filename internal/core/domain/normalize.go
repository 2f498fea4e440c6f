package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizeRelPath canonicalizes a tag+name pair into the cache key form:
// slash-separated, extension present, "./" and "../" segments resolved, no
// leading "./". Every spelling of the same relative path maps to the same key,
// so "hooks/startup", "hooks/startup.lua", "hooks/./startup.lua",
// "./hooks/startup.lua" and "hooks/../hooks/startup.lua" are all equivalent.
func NormalizeRelPath(tag, name, ext string) string {
	rel := path.Join(filepath.ToSlash(tag), filepath.ToSlash(name))
	if !strings.HasSuffix(rel, ext) {
		rel += ext
	}
	return rel
}
