/*
Package status records what a migration run did to each file and owns the
read and overwrite of those files.

	+-------------+      +-------------+
	|    Files    |      |   Tracker   |
	| (read/write)|      |  (outcomes) |
	+------+------+      +------+------+
	       |                    |
	       +---------+----------+
	                 |
	          +------+------+
	          |  Formatter  |
	          |  (wording)  |
	          +-------------+

🎯 Purpose:
- Reads files fully and overwrites them in place with their original mode
- Tracks per-file outcomes (updated, unchanged, failed, skipped)
- Produces the closing summary line and table

🔍 Example:

	tracker := status.NewTracker(status.NewDefaultFileFormatter())
	tracker.Track(ctx, status.Entry{Path: "src/a.astro", Status: status.StatusUpdated})
	table, err := tracker.Render()
*/
package status
