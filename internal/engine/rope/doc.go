// Package rope provides an immutable rope data structure for efficient text
// storage and manipulation.
//
// A rope is a tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (rune count, newline count). This implementation
// uses a B+ tree variant for better cache locality and worst-case behavior.
//
// All public offsets are rune offsets: the editing model above this package
// works in Unicode scalar values, never in bytes.
//
// Key properties:
//   - O(log n) insertion, deletion, slicing, and line/offset queries
//   - Operations return new ropes; originals are never modified
//   - Structural sharing makes buffer snapshots cheap to retain
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 6)             // " world" minus "hello,"
//	text := r.String()
package rope
