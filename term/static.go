package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sourceful-energy/pixelgrid/pattern"
)

// framesPerRow is how many frames RenderPattern puts side by side.
const framesPerRow = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle   = lipgloss.NewStyle().MarginRight(2)
)

// RenderStatic draws one bitmap as dim rows of coloured glyphs.
func RenderStatic(dim pattern.Dimension, b pattern.Bitmap, c pattern.ColorName) string {
	on, off := cellColors(c)
	onCell := lipgloss.NewStyle().Foreground(lipgloss.Color(on.Hex())).Render(strings.Repeat(string(onGlyph), CellWidth))
	offCell := lipgloss.NewStyle().Foreground(lipgloss.Color(off.Hex())).Render(strings.Repeat(string(offGlyph), CellWidth))

	n := int(dim)
	rows := make([]string, n)
	var sb strings.Builder
	for y := 0; y < n; y++ {
		sb.Reset()
		for x := 0; x < n; x++ {
			if b.On(dim.Index(x, y)) {
				sb.WriteString(onCell)
			} else {
				sb.WriteString(offCell)
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// RenderPattern draws every frame of p, numbered from 1, framesPerRow to a
// line, under a header with the name, description and timing.
func RenderPattern(id string, p pattern.Pattern, dim pattern.Dimension, c pattern.ColorName, cycle, frame int64) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s (%s)", p.Name, id)),
		dimStyle.Render(p.Description),
		dimStyle.Render(fmt.Sprintf("%d frames · %dms cycle · %dms/frame · %s", p.Len(), cycle, frame, c)),
	)

	bitmaps := p.Bitmaps(dim)
	var lines []string
	for start := 0; start < len(bitmaps); start += framesPerRow {
		end := min(start+framesPerRow, len(bitmaps))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
				RenderStatic(dim, bitmaps[i], c),
				captionStyle.Render(fmt.Sprintf("%d", i+1)),
			)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, lines...)...)
}
