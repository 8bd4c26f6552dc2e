/*
Package operation drives a rewrite run over a directory tree.

	+-------------+
	|    Walk     |
	|  (select)   |
	+------+------+
	       |
	+------+------+
	|  Transform  |
	|   (rules)   |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (write)    |
	+-------------+

🔄 Flow:
1. Check the root directory exists, otherwise stop before touching anything
2. Walk the tree in lexical order, selecting files by include/exclude globs
3. Read each file, apply the rule set, write it back only if it changed
4. Return a Summary with total and updated counts

A failure on one file is recorded in the Summary and the walk moves on to the next
file. Nothing runs concurrently: each file is read, transformed and written before
the next one is opened.

🔍 Example:

	op, err := operation.New(operation.Options{
		Root:  "src_new",
		Rules: rules.Default(),
	})
	summary, err := op.Rewrite(ctx)
*/
package operation
