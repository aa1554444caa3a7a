/*
Package operation implements the migration run: find files still carrying
Font Awesome markup and rewrite them to Lucide components.

	+-------------+
	|   Scanner   |
	|  (Find)     |
	+------+------+
	       |
	+------+------+      +-------------+
	| Special File|----->|  Splicer    |
	+------+------+      +-------------+
	       |
	+------+------+      +-------------+
	|  Each File  |----->|  Rewriter   |
	+------+------+      +-------------+
	       |
	+------+------+
	|   Tracker   |
	+-------------+

🎯 Purpose:
- Drives one migration from scan to the final message
- Keeps every per-file failure local to that file
- Records each outcome in a status.Tracker for the closing summary

🔄 Flow:
1. Scan the tree for eligible files with old icon markup
2. Print the list of files found
3. Rebuild the icon table of the special file, when it exists
4. Rewrite icon markup in every other file found
5. Print the completion message

⚡ Dry run:
No file is written. Each file that would change is shown as a line diff
instead.

🔍 Example:

	op, err := operation.NewMigrateOperation(ctx, operation.Options{
		Config:  cfg,
		Mapping: table,
		FS:      osfs.New(root),
		Root:    root,
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
*/
package operation
