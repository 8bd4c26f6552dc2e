/*
Package status owns the file system side of a rewrite run.

🎯 Purpose:
- Reads and writes files relative to the run's root directory
- Records the outcome (unchanged, updated, would update, failed) of every file
- Formats per-file lines and the final "Updated X/Y files" summary

Writes happen in place and keep the file's permissions. Content is always fully
computed before the file is opened for writing, so a crash before the write leaves
the file untouched; a crash during the write may leave it truncated.
*/
package status
