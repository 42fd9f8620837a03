// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides JSON pointer utilities for OpenAPI document
// traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// pointers incrementally without allocating intermediate strings. The parser
// pushes one segment per field while descending, so the pointer of the
// entity under construction is available whenever it is needed: as its key
// in the document's entity arena, or in a diagnostic.
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("components")
//	path.Push("schemas")
//	path.Push("a/b")
//	path.String() // "#/components/schemas/a~1b"
//
// [EscapeSegment] and [UnescapeSegment] implement RFC 6901 escaping.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It rejects symlinks and directories:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
package pathutil
