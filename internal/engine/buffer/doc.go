// Package buffer provides the line buffer that backs every open file.
//
// A Buffer holds the text of one file as an ordered slice of lines without
// trailing line breaks. Columns index runes, not bytes or grapheme
// clusters, so wide and combining characters are not measured by display
// width.
//
// A buffer with zero lines is a valid state, distinct from a buffer that
// holds a single empty line. Every mutation handles the zero-line case
// before indexing:
//
//	buf := buffer.Untitled()        // zero lines
//	buf.InsertChar('a', buffer.Position{})
//	buf.Lines()                     // ["a"]
//
// Buffers are owned by a Store and referenced through a Handle. Holders of
// a Handle resolve it with Store.Get on every access, which fails with
// ErrStaleHandle once the buffer has been removed.
//
// Buffers are not safe for concurrent use. The editor mutates them from a
// single event loop.
package buffer
