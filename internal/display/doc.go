// Package display formats search results and user-facing warnings for the
// terminal.
//
// # Result Lines
//
// Renderer writes one line per match:
//
//	r := display.NewRenderer(useColor)
//	r.Render(os.Stdout, entry)
//
// With color disabled a line is exactly dir + separator + name + "\n", byte
// for byte. With color enabled:
//   - Dim (\x1b[2m) for the directory and separator
//   - Bold red (\x1b[1;31m) for the matched bytes of the name
//   - Reset (\x1b[0m) after each styled section and at the end of the line
//
// Match ranges are byte offsets and are applied to the raw name bytes.
// Fuzzy and match-all results carry no range and are printed unstyled.
//
// # Warning Messages
//
//	display.WarnSortIgnored("regex").Display(os.Stderr, useColor)
//
// All functions accept io.Writer interfaces for testability.
package display
