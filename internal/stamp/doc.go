// Package stamp builds and parses date-stamped filenames.
//
// A stamp is YYYY-MM-DD, optionally followed by _HH.MM.SS, joined to the
// base name with an underscore either before it (the default) or after it
// (suffix mode). ExtractStamp recognises exactly that shape, so a name
// produced by ComposeStampedName can be restamped without accumulating
// stamps:
//
//	2024-03-05_report.txt -> report.txt -> 2024-04-01_report.txt
//
// All functions are pure; the clock reading is an explicit argument.
package stamp
