/*
Package operation copies resolved sources into the theme tree.

	+-------------+        +-------------+
	|  Executor   | -----> |   Copier    |
	| (goroutine) |        | (file/tree) |
	+------+------+        +-------------+
	       |
	+------+------+
	|  Reporter   |
	|  (status)   |
	+-------------+

🎯 Purpose:
- Creates missing parent directories
- Copies one file, keeping permissions and times
- Copies one directory tree onto a path that does not exist yet
- Refuses to copy a file onto itself or a tree into itself

🔗 Symlinks:
Links are followed. A directory link leading back to a directory already
being copied above it is skipped.

🔄 Flow:
1. Submit spawns a goroutine per copy
2. The reporter gets a "Copying" message
3. The copy runs
4. The reporter gets a "Copied" or an "Error copying" message
5. The Result is sent on the returned channel

⚡ Concurrency:
A started copy cannot be cancelled. Two identical submissions in flight
share one copy. Concurrent copies into the same parent directory race on
directory creation, which MkdirAll tolerates.
*/
package operation
