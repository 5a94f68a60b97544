package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/qrforge/qrencode"
)

// writeASCII prints the symbol to w as double-wide block characters, with
// a 4-module quiet zone border, matching the teacher pack's console demo
// convention.
func writeASCII(w io.Writer, sym *qrencode.Symbol) {
	const border = 4
	side := sym.Side()
	for row := -border; row < side+border; row++ {
		for col := -border; col < side+border; col++ {
			if sym.GetModule(row, col) {
				fmt.Fprint(w, "██")
			} else {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

// writePNG renders the symbol to path as a paletted PNG, scale pixels per
// module, grounded on the pack's own QRCode.WritePNG.
func writePNG(path string, sym *qrencode.Symbol, scale int) error {
	if scale < 1 {
		scale = 1
	}
	const border = 4
	side := sym.Side()
	dim := (side + 2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{color.White, color.Black})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if !sym.GetModule(row, col) {
				continue
			}
			startX := (col + border) * scale
			startY := (row + border) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// writeSVG hand-emits SVG path data for the symbol's dark modules, the way
// the pack's own deposit-address QR rendering does inline.
func writeSVG(path string, sym *qrencode.Symbol, border int) error {
	if border < 0 {
		border = 0
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	dimension := sym.Side() + border*2
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", dimension, dimension)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")

	first := true
	for row := 0; row < sym.Side(); row++ {
		for col := 0; col < sym.Side(); col++ {
			if !sym.GetModule(row, col) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", col+border, row+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
