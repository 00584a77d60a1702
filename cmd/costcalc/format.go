package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

func money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func hours(v float64) string {
	return humanize.FormatFloat("#,###.#", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
