// Package header reads and writes the header of an array file.
//
// An array file begins with a fixed prefix followed by an ASCII header and
// the raw element buffer:
//
//	offset 0     6 bytes  magic "\x93NUMPY"
//	offset 6     1 byte   major version (1 or 2)
//	offset 7     1 byte   minor version (0)
//	offset 8     2|4      little-endian header length N (2 bytes for v1, 4 for v2)
//	offset 8+w   N bytes  header text
//	offset 8+w+N          element buffer
//
// The header text is a Python dict literal:
//
//	{ 'descr': '<u4', 'fortran_order': False, 'shape': (2, 3), }
//
// [Parse] tokenizes that text and [Header.Format] produces it. [Decode]
// and [Encode] handle the surrounding prefix, including version selection
// and alignment padding.
package header
