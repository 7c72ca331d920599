package qrcode

import (
	"fmt"
	"strings"
)

// vector draws the module matrix as an SVG document holding one path. Each
// run of dark modules in a row becomes a single rectangle in that path. The
// viewBox is in modules; moduleSize only sets the displayed width.
func vector(bits [][]bool, moduleSize int) []byte {
	n := len(bits)
	px := n * moduleSize

	var d strings.Builder
	for y, row := range bits {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&d, "M%d %dh%dv1h-%dz", start, y, x-start, x-start)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n",
		px, px, n, n)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", n, n)
	fmt.Fprintf(&sb, `<path id="qr-path" fill="#000000" d="%s"/>`+"\n", d.String())
	sb.WriteString("</svg>\n")

	return []byte(sb.String())
}
