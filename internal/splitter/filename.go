package splitter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameBytes leaves room for the extension and collision suffix within
// the usual 255 byte filename limit.
const maxNameBytes = 200

// SanitizeFilename maps an arbitrary group key to a safe file base name.
func SanitizeFilename(key string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return '_'
		}
		return r
	}, key)

	name = strings.TrimRight(name, " .")

	if len(name) > maxNameBytes {
		cut := maxNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimRight(name[:cut], " .")
	}

	if name == "" {
		return "_"
	}

	return name
}

// namer hands out unique file base names for a single export run.
// Names are compared case-insensitively for case-folding filesystems.
type namer struct {
	taken map[string]bool
}

func newNamer() *namer {
	return &namer{taken: make(map[string]bool)}
}

func (n *namer) next(key string) string {
	base := SanitizeFilename(key)
	name := base
	for i := 2; n.taken[strings.ToLower(name)]; i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	n.taken[strings.ToLower(name)] = true

	return name
}
