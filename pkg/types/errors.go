package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindDimensions ErrKind = iota // construction parameters rejected
	ErrKindAlloc                     // block sizing or allocation failed
	ErrKindTooLarge                  // key+value exceed the cell width
	ErrKindFull                      // no empty or matching cell left
	ErrKindNotFound                  // key absent
	ErrKindRange                     // cell index outside the block
	ErrKindInput                     // key/value not encodable (NUL bytes, empty key)
	ErrKindState                     // operation on a closed table
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindDimensions:
		return "dimensions"
	case ErrKindAlloc:
		return "alloc"
	case ErrKindTooLarge:
		return "too-large"
	case ErrKindFull:
		return "full"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindRange:
		return "range"
	case ErrKindInput:
		return "input"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so an error built with New still
// satisfies errors.Is against the package sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// New returns an error of the given kind carrying msg and an optional cause.
func New(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidDimensions indicates rows, columns, capacity or cell size were rejected.
	ErrInvalidDimensions = &Error{Kind: ErrKindDimensions, Msg: "invalid table dimensions"}
	// ErrAllocationFailed indicates the cell block overflowed int or could not be obtained.
	ErrAllocationFailed = &Error{Kind: ErrKindAlloc, Msg: "cell block allocation failed"}
	// ErrEntryTooLarge indicates len(key)+len(value)+2 exceeds the cell size.
	ErrEntryTooLarge = &Error{Kind: ErrKindTooLarge, Msg: "entry too large for cell"}
	// ErrTableFull indicates every candidate cell holds a different key.
	ErrTableFull = &Error{Kind: ErrKindFull, Msg: "table full"}
	// ErrNotFound indicates a missing key.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrIndexOutOfRange indicates a cell index >= capacity.
	ErrIndexOutOfRange = &Error{Kind: ErrKindRange, Msg: "cell index out of range"}
	// ErrInvalidKey indicates an empty key or a key or value containing NUL.
	ErrInvalidKey = &Error{Kind: ErrKindInput, Msg: "key or value not encodable"}
	// ErrClosed indicates the table's block has been released.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "table closed"}
)
