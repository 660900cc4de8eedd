// SPDX-License-Identifier: MIT

// Package ndio reads and writes named N-dimensional variables stored as
// NumPy .npy payloads, either a single .npy file or a .npz archive of
// several.
//
// Arrays in this module are indexed with axis 0 fastest, while NumPy
// defaults to C order (last axis fastest). Reading a C-ordered payload
// reverses its shape so that the element order on disk is kept unchanged;
// Fortran-ordered payloads keep their shape. Files written by this package
// carry a "<name>.dims" entry recording the extents (axis 0 first) and
// optional per-axis dimension names, which takes precedence on read.
//
// On-disk element types other than the requested one are converted, with
// a warning on the configured logger.
package ndio
