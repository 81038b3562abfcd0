package format

const (
	// Terminator ends both the key and the value inside a cell.
	Terminator = 0

	// MinCellSize is the smallest cell that can hold an (empty) key and value.
	MinCellSize = 2

	// Overhead is the number of terminator bytes per encoded entry.
	Overhead = 2
)
