package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hanzikit/radicalgebra/chardb"
	"github.com/hanzikit/radicalgebra/tensor"
)

const emptyCell = "·"

// spaced joins runes with single spaces for headers and summaries.
func spaced(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}

	return strings.Join(parts, " ")
}

// cellString renders one cell, substituting a dot for emptiness.
func cellString(cell chardb.CharSet) string {
	if cell.Len() == 0 {
		return emptyCell
	}

	return cell.String()
}

// renderMatrix prints the full rank-2 grid, rows by the first axis.
func renderMatrix(w io.Writer, res *tensor.Result) error {
	set := res.RadicalSet()

	fmt.Fprint(w, "\n    ")
	for j := 0; j < set.Len(); j++ {
		fmt.Fprintf(w, "%-4c", set.At(j))
	}
	fmt.Fprintln(w)

	for i := 0; i < set.Len(); i++ {
		fmt.Fprintf(w, "%-4c", set.At(i))
		for j := 0; j < set.Len(); j++ {
			cell, err := res.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-4s", cellString(cell))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	return nil
}

// renderDiagonal prints the super-diagonal of a rank-3+ tensor: each
// radical combined with itself rank times. The full grid grows as
// size^rank; the diagonal is where self-compositions like 鑫 and 燚 live.
func renderDiagonal(w io.Writer, res *tensor.Result) error {
	set := res.RadicalSet()

	fmt.Fprintln(w)
	index := make([]int, res.Rank())
	for i := 0; i < set.Len(); i++ {
		for d := range index {
			index[d] = i
		}
		cell, err := res.At(index...)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%c ×%d = %s\n", set.At(i), res.Rank(), cellString(cell))
	}
	fmt.Fprintln(w)

	return nil
}

// renderNotable sums up the tensor: occupied cells out of the total
// index space, and every distinct character found.
func renderNotable(w io.Writer, res *tensor.Result) error {
	total := 1
	for i := 0; i < res.Rank(); i++ {
		total *= res.Size()
	}

	found := chardb.NewCharSet()
	index := make([]int, res.Rank())
	for {
		cell, err := res.At(index...)
		if err != nil {
			return err
		}
		found.AddAll(cell)
		if !nextIndex(index, res.Size()) {
			break
		}
	}

	fmt.Fprintf(w, "Occupied cells: %d/%d\n", res.Cells(), total)
	if found.Len() == 0 {
		fmt.Fprintln(w, "Characters found: none")

		return nil
	}
	fmt.Fprintf(w, "Characters found (%d): %s\n", found.Len(), spaced(found.Sorted()))

	return nil
}

// nextIndex advances a rank-length odometer; false once it wraps.
func nextIndex(index []int, size int) bool {
	for d := len(index) - 1; d >= 0; d-- {
		index[d]++
		if index[d] < size {
			return true
		}
		index[d] = 0
	}

	return false
}
