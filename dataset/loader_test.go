package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzikit/radicalgebra/dataset"
)

// TestParse_BasicRecords verifies field splitting and tag stripping.
func TestParse_BasicRecords(t *testing.T) {
	in := "U+6797\t林\t⿰木木[GTJKV]\n" +
		"U+708E\t炎\t⿱火火\n" +
		"U+91D1\t金\t金\n"

	records, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "⿰木木", records['林'], "source tags must be stripped")
	assert.Equal(t, "⿱火火", records['炎'])
	assert.Equal(t, "金", records['金'], "atomic self-entries survive")
}

// TestParse_SkipsCommentsAndMalformed verifies silent recovery: comments,
// short lines, missing U+ prefix and entity references all vanish without
// error.
func TestParse_SkipsCommentsAndMalformed(t *testing.T) {
	in := strings.Join([]string{
		";; cjkvi-ids extract",
		"# another comment style",
		"",
		"not-a-record",
		"U+6797\t林", // too few fields
		"6797\t林\t⿰木木",              // missing U+ prefix
		"U+56D8\t囘\t⿵&CDP-8BF5;巳",  // unresolved entity
		"U+0041\tAB\t⿰木木",          // character field is not one code point
		"U+6797\t林\t⿰木木",
	}, "\n")

	records, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'林': "⿰木木"}, records)
}

// TestParse_LastWriteWins verifies duplicate characters keep the final
// decomposition.
func TestParse_LastWriteWins(t *testing.T) {
	in := "U+6797\t林\t⿰木木\nU+6797\t林\t⿱木木\n"

	records, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "⿱木木", records['林'])
}

// TestLoad_EmbeddedExtract spot-checks the embedded dataset: size,
// fixture decompositions, nesting and the skipped entity entries.
func TestLoad_EmbeddedExtract(t *testing.T) {
	records := dataset.Load()
	require.NotEmpty(t, records)

	assert.Equal(t, "⿰金金", records['鍂'])
	assert.Equal(t, "⿱金鍂", records['鑫'], "triples nest through the pair characters")
	assert.Equal(t, "⿱土圭", records['垚'])
	assert.Equal(t, "氵", records['氵'], "water-radical self-entry present")
	assert.Equal(t, "⿲木彡木", records['彬'], "ternary operator present")

	_, hasEntity := records['囘']
	assert.False(t, hasEntity, "entity-reference records must be skipped")
}
