package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	titleText   = color.New(color.FgCyan, color.Bold).SprintFunc()
	totalText   = color.New(color.FgGreen, color.Bold).SprintFunc()
	mutedText   = color.New(color.FgHiBlack).SprintFunc()
	errorText   = color.New(color.FgRed, color.Bold).SprintFunc()
	successText = color.New(color.FgGreen).SprintFunc()
)

func renderTable(rows [][]string) string {
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(pterm.TableData(rows)).
		Srender()
	if err != nil {
		return fmt.Sprint(rows)
	}
	return out
}

// formatRupees rounds to whole rupees with thousands separators.
func formatRupees(v float64) string {
	return "₹" + groupThousands(int64(v+0.5))
}

func formatTotal(v int64) string {
	return "₹" + groupThousands(v)
}

func groupThousands(n int64) string {
	mag := uint64(n)
	sign := ""
	if n < 0 {
		// two's complement negation stays correct for math.MinInt64
		mag = -mag
		sign = "-"
	}
	s := strconv.FormatUint(mag, 10)
	if len(s) <= 3 {
		return sign + s
	}

	out := []byte(sign)
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > len(sign) {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
