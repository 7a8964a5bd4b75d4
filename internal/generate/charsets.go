package generate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/assetnote/brutegen/pkg/charset"
	"github.com/francoispqt/gojay"
	"github.com/olekukonko/tablewriter"
)

// ListCharsets writes the builtin charsets in the requested format
func ListCharsets(w io.Writer, format Format) error {
	switch format {
	case Plain:
		for _, v := range charset.Builtin {
			fmt.Fprintln(w, TabString(v.ID, strconv.Itoa(len(v.Symbols)), v.Description, v.Symbols))
		}
	case JSON:
		enc := gojay.BorrowEncoder(w)
		defer enc.Release()
		if err := enc.Encode(charset.Builtin); err != nil {
			return fmt.Errorf("failed to encode charsets: %w", err)
		}
		fmt.Fprintln(w)
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"id", "size", "description", "symbols"})
		table.SetAutoWrapText(false)
		for _, v := range charset.Builtin {
			table.Append([]string{v.ID, strconv.Itoa(len(v.Symbols)), v.Description, v.Symbols})
		}
		table.Render()
	}
	return nil
}
