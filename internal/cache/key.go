package cache

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// keySanitizer strips the characters that are unsafe in filenames.
var keySanitizer = strings.NewReplacer(
	"/", "_",
	":", "_",
	"?", "_",
	"=", "_",
	"&", "_",
	"%", "_",
)

const maxFragmentLen = 50

// Key derives the cache filename stem for a source URL: a stable digest
// prefix plus a sanitized, truncated fragment of the URL for debuggability.
// The digest is of the URL, not the content — last write per URL wins.
func Key(sourceURL string) string {
	digest := xxhash.Sum64String(sourceURL)
	fragment := keySanitizer.Replace(sourceURL)
	if len(fragment) > maxFragmentLen {
		fragment = fragment[:maxFragmentLen]
	}
	return fmt.Sprintf("%016x_%s", digest, fragment)
}
