package generate

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/dustin/go-humanize"
	"github.com/francoispqt/gojay"
	"github.com/olekukonko/tablewriter"
)

func bigComma(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// CountRow is one length of the keyspace
type CountRow struct {
	Length   int
	Count    uint64
	Offset   uint64 // index of the first string of this length
	Bytes    uint64
	Overflow bool // the count or the running total does not fit 64 bits
}

func (r CountRow) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("length", r.Length)
	if r.Overflow {
		enc.BoolKey("overflow", true)
		return
	}
	enc.Uint64Key("count", r.Count)
	enc.Uint64Key("offset", r.Offset)
	enc.Uint64Key("bytes", r.Bytes)
}

func (r CountRow) IsNil() bool {
	return false
}

type CountRows []CountRow

func (c CountRows) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range c {
		enc.Object(v)
	}
}

func (c CountRows) IsNil() bool {
	return len(c) == 0
}

// CountLengths counts every length of the range. Unlike keyspace.NewSpace it does not stop at the
// first overflow: every length from there on is flagged instead, so the caller can see where the
// space stops being countable
func CountLengths(base int, lengths keyspace.LengthRange) (CountRows, error) {
	if base < 1 {
		return nil, fmt.Errorf("invalid alphabet size %d", base)
	}
	if err := lengths.Validate(); err != nil {
		return nil, err
	}

	rows := make(CountRows, 0, lengths.Lengths())
	var (
		offset   uint64
		overflow bool
	)
	for l := lengths.Min; l <= lengths.Max; l++ {
		row := CountRow{Length: l, Offset: offset}
		c, ok := keyspace.PowChecked(uint64(base), l)
		if !ok || overflow {
			overflow = true
			row.Overflow = true
			rows = append(rows, row)
			continue
		}
		row.Count = c
		if offset, ok = keyspace.AddChecked(offset, c); !ok {
			overflow = true
			row.Overflow = true
		}
		if b, ok := keyspace.MulChecked(c, uint64(l+1)); ok {
			row.Bytes = b
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Count writes the per length table for the options' alphabet and range
func Count(w io.Writer, format Format, opts ...GenerateOption) error {
	o, err := NewGenerateOptions(opts...)
	if err != nil {
		return err
	}
	rows, err := CountLengths(o.Alphabet.Len(), o.Lengths)
	if err != nil {
		return err
	}

	var (
		total     uint64
		totalOk   = true
		totalSize uint64
		sizeOk    = true
	)
	for _, r := range rows {
		if r.Overflow {
			totalOk, sizeOk = false, false
			break
		}
		total += r.Count
		if r.Bytes == 0 {
			sizeOk = false
		}
		if sizeOk {
			if totalSize, sizeOk = keyspace.AddChecked(totalSize, r.Bytes); !sizeOk {
				totalSize = 0
			}
		}
	}

	switch format {
	case Plain:
		for _, r := range rows {
			if r.Overflow {
				fmt.Fprintln(w, TabString(strconv.Itoa(r.Length), "overflow"))
				continue
			}
			fmt.Fprintln(w, TabString(strconv.Itoa(r.Length), strconv.FormatUint(r.Count, 10),
				strconv.FormatUint(r.Offset, 10), strconv.FormatUint(r.Bytes, 10)))
		}
	case JSON:
		enc := gojay.BorrowEncoder(w)
		defer enc.Release()
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode counts: %w", err)
		}
		fmt.Fprintln(w)
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"length", "count", "offset", "size"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		for _, r := range rows {
			if r.Overflow {
				table.Append([]string{strconv.Itoa(r.Length), "overflow", "-", "-"})
				continue
			}
			size := "-"
			if r.Bytes > 0 {
				size = humanize.Bytes(r.Bytes)
			}
			table.Append([]string{strconv.Itoa(r.Length), bigComma(r.Count), bigComma(r.Offset), size})
		}
		footer := []string{"total", "overflow", "", ""}
		if totalOk {
			footer[1] = bigComma(total)
			if sizeOk {
				footer[3] = humanize.Bytes(totalSize)
			}
		}
		table.SetFooter(footer)
		table.Render()
	}
	return nil
}
