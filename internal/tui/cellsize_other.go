//go:build !unix

package tui

// CellSize returns the usual 8x16 pixel cell.
func CellSize() (cellW, cellH int) {
	return 8, 16
}
