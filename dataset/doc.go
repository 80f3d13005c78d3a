// Package dataset loads raw character-decomposition records in the
// cjkvi-ids format and carries an embedded curated extract of that
// database.
//
// Line format (tab-separated):
//
//	U+6797<TAB>林<TAB>⿰木木[GTJKV]
//
// The first field is the code point, the second the character, and the
// remaining fields are candidate IDS decompositions, optionally suffixed
// with bracketed source tags. The loader takes the first candidate,
// strips the tag suffix, and skips comment lines (# or ;;), entries with
// unresolved entity references (&CDP-xxxx;) and otherwise malformed
// lines — silently, as a single bad record must never abort a bulk load.
// Duplicate characters resolve last-write-wins.
//
// Load returns the embedded extract; Parse consumes any reader in the
// same format, so a full cjkvi-ids ids.txt can be swapped in without
// touching the indices built on top.
package dataset
