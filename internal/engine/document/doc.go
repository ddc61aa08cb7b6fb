// Package document provides the line store that backs the editor engine.
//
// A Document is an ordered sequence of committed lines. Each line is a
// raw byte slice that may end with a terminator ("\r\n", or a bare "\n"
// or "\r" coming from legacy input). Only the final line may lack one.
//
// The line under the cursor is edited through a Staging value, the
// mutable working copy of that row. Staging content is authoritative for
// the cursor row until it is committed back with Document.Commit.
//
// Ownership:
//
// The Document exclusively owns the storage of every line it holds.
// Commit and InsertLineAt copy their input, and Commit drops the prior
// slot value before installing the new one, so callers may keep reusing
// their own buffers (including a Staging buffer) after handing them in.
//
// Column Unit:
//
// All column arithmetic uses VisibleLength, the byte length excluding
// the trailing terminator.
//
// Thread Safety:
//
// Document and Staging are not safe for concurrent use. The editor runs
// a single control loop and owns both values exclusively.
package document
