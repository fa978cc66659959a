// Package format renders command results as text.
//
// Commands return one of a closed set of displayable values (Text, Table,
// FormattedItem, List, Raw) and the formatter turns it into either a framed
// table for interactive use or plain left-aligned text suitable for piping.
// Output is a total function over the variant set: it never fails.
package format
