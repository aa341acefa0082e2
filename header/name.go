package header

import "strings"

var symbolReplacer = strings.NewReplacer("-", "_", " ", "_")

// MacroPrefix derives the include-guard and macro prefix from a raw image
// name: uppercased, with hyphens and spaces replaced by underscores. Any
// other character passes through unchanged, so a name containing e.g. "."
// or "#" yields the same broken symbol the generated header always had.
func MacroPrefix(name string) string {
	return symbolReplacer.Replace(strings.ToUpper(name))
}

// ArrayName derives the pixel-array symbol from a raw image name using the
// same replacement rules as MacroPrefix, lowercased.
func ArrayName(name string) string {
	return symbolReplacer.Replace(strings.ToLower(name))
}
