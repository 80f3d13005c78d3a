package dataset

import (
	"bytes"
	_ "embed"
)

// embeddedIDS is a curated extract of the cjkvi-ids database: the Wu Xing
// composition closure, atomic component self-entries, and a spread of
// common two- and three-part characters covering all twelve IDS
// operators. The atomic self-entries (金→金, 氵→氵, …) match the upstream
// format and double as the fixed points / overflow cases of the
// composition index expansion.
//
//go:embed ids.txt
var embeddedIDS []byte

// Load parses the embedded extract. The embedded data is known-good, so
// Load cannot fail; a parse error here would be a build defect, hence the
// panic.
func Load() map[rune]string {
	records, err := Parse(bytes.NewReader(embeddedIDS))
	if err != nil {
		panic("dataset: embedded ids.txt unreadable: " + err.Error())
	}

	return records
}
