// Package types defines the error taxonomy shared by the celltable packages.
//
// Every failure returned by the store, multirow and doublehash packages
// matches exactly one of the sentinels below under errors.Is, regardless of
// any context the package adds around it:
//
//   - ErrInvalidDimensions: construction parameters cannot form a table.
//   - ErrAllocationFailed: the backing block could not be sized or obtained.
//   - ErrEntryTooLarge: key and value do not fit in one cell.
//   - ErrTableFull: the probe sequence found no free or matching cell.
//   - ErrNotFound: lookup did not find the key.
//
// This package has no dependencies beyond the standard library.
package types
