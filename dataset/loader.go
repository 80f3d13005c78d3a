package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse reads cjkvi-ids records from r and returns the
// character→decomposition mapping. Malformed individual records are
// skipped; only a read failure on r itself is an error.
func Parse(r io.Reader) (map[rune]string, error) {
	records := make(map[rune]string)

	scanner := bufio.NewScanner(r)
	// Real cjkvi-ids lines stay well under 200 bytes; the enlarged buffer
	// keeps an oversized line from aborting a bulk load.
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for scanner.Scan() {
		char, ids, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		// Last write wins on duplicate characters: unexpected in a clean
		// dataset, but not worth failing a bulk load over.
		records[char] = ids
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: scan: %w", err)
	}

	return records, nil
}

// parseLine extracts (character, decomposition) from one raw line.
// ok=false marks comments and malformed records.
func parseLine(line string) (char rune, ids string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";;") {
		return 0, "", false
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return 0, "", false
	}

	// Field 0 is the U+XXXX code point; the character field is
	// authoritative, so the code point is only sanity-checked by shape.
	if !strings.HasPrefix(fields[0], "U+") {
		return 0, "", false
	}

	char, size := utf8.DecodeRuneInString(fields[1])
	if char == utf8.RuneError || size != len(fields[1]) {
		return 0, "", false
	}

	ids = stripSourceTag(fields[2])
	if ids == "" {
		return 0, "", false
	}
	// Unresolved CDP/private entity references cannot be expanded into
	// components; treat the record as absent.
	if strings.ContainsRune(ids, '&') {
		return 0, "", false
	}

	return char, ids, true
}

// stripSourceTag removes a trailing bracketed source list, e.g.
// "⿰木木[GTJKV]" → "⿰木木".
func stripSourceTag(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}

	return field
}
