package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kiltia/showroom"

	"github.com/charmbracelet/lipgloss"
)

// pxPerCell converts CSS pixels of the tree into terminal cells.
const pxPerCell = 8

const flashText = "✨ Preview updated"

func cells(px int) int {
	return max(0, px/pxPerCell)
}

// color maps a tree color onto the terminal. Only hex colors are rendered;
// rgb() notation falls back to the terminal default.
func color(c string) lipgloss.TerminalColor {
	if strings.HasPrefix(c, "#") && showroom.IsValidColor(c) {
		return lipgloss.Color(c)
	}
	return lipgloss.NoColor{}
}

func border(radius int) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func alignment(a showroom.Alignment) lipgloss.Position {
	switch a {
	case showroom.AlignLeft:
		return lipgloss.Left
	case showroom.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

func galleryAlignment(a showroom.GalleryAlignment) lipgloss.Position {
	switch a {
	case showroom.GridLeft:
		return lipgloss.Left
	case showroom.GridRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// RenderPreview draws the product card described by cfg in at most width
// columns.
func RenderPreview(cfg showroom.Configuration, width int, flash bool) string {
	pad := cells(cfg.Layout.ContainerPadding)
	card := lipgloss.NewStyle().
		Width(max(width-2, 10)).
		Padding(pad/2, pad).
		Foreground(lipgloss.Color("#1F2937")).
		Background(color(cfg.Layout.SectionBackgroundColor))
	if cfg.Stroke.Weight > 0 {
		b := border(cfg.Layout.CardCornerRadius)
		if cfg.Stroke.Weight >= 3 {
			b = lipgloss.ThickBorder()
		}
		card = card.Border(b).BorderForeground(color(cfg.Stroke.Color))
	}
	inner := max(width-2-2*pad-2, 10)

	var body string
	switch cfg.CurrentLayout {
	case showroom.Layout2:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			renderGallery(cfg.Product, cfg.Gallery, inner),
			"",
			renderDetails(cfg, inner),
		)
	default:
		half := inner / 2
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(renderGallery(cfg.Product, cfg.Gallery, half-1)),
			lipgloss.NewStyle().Width(inner-half).Render(renderDetails(cfg, inner-half)),
		)
	}

	header := Styles.Muted.Render("Preview · " + layoutLabel(cfg.CurrentLayout))
	if flash {
		header += "  " + Styles.Flash.Render(flashText)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, card.Render(body))
}

func layoutLabel(l showroom.LayoutType) string {
	for _, c := range showroom.Layouts {
		if c.Value == l {
			return c.Label
		}
	}
	return string(l)
}

func renderGallery(p showroom.Product, g showroom.Gallery, width int) string {
	width = max(width, 4)
	frame := lipgloss.NewStyle().Border(border(g.BorderRadius))

	caption := "no image"
	if img, ok := p.MainImage(); ok {
		caption = img.Alt
	}
	hero := frame.
		Width(max(width-2, 2)).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(caption)

	gap := strings.Repeat(" ", cells(g.Spacing))
	var rows, row []string
	rowWidth := 0
	for _, img := range p.Images {
		label := img.ID
		if img.IsMain {
			label = "★" + label
		}
		thumb := frame.Padding(0, 1).Render(label)
		w := lipgloss.Width(thumb)
		if len(row) > 0 && rowWidth+len(gap)+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, gap)
			rowWidth += len(gap)
		}
		row = append(row, thumb)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	for i, r := range rows {
		rows[i] = lipgloss.PlaceHorizontal(width, galleryAlignment(g.Alignment), r)
	}
	strip := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.JoinVertical(lipgloss.Left, hero, strip)
}

func renderDetails(cfg showroom.Configuration, width int) string {
	width = max(width, 4)
	t := cfg.Typography
	title := lipgloss.NewStyle().
		Bold(t.FontWeight >= showroom.FontWeightSemiBold).
		Width(width).
		Render(cfg.Product.Title)
	font := Styles.Muted.Render(fmt.Sprintf("%s · %d · %dpx", t.FontFamily, t.FontWeight, t.FontSize))
	price := lipgloss.NewStyle().Bold(true).Render(
		cfg.Product.Currency + strconv.FormatFloat(cfg.Product.Price, 'f', -1, 64),
	)

	c := cfg.Product.Customization
	lines := []string{
		title,
		font,
		price,
		"",
		renderDropdown(c.Arms),
		renderPalette(c.Fabric),
		renderPalette(c.Leather),
		renderDropdown(c.Legs),
		"",
		renderButton(cfg.Button, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func mark(selected bool) string {
	if selected {
		return "●"
	}
	return "○"
}

func renderDropdown(d showroom.DropdownOption) string {
	var s strings.Builder
	s.WriteString(d.Label + ": ")
	for i, o := range d.Options {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(mark(o.Value == d.Selected) + " " + o.Label)
	}
	return s.String()
}

func renderPalette(p showroom.ColorPalette) string {
	swatches := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		swatch := lipgloss.NewStyle().Foreground(color(c.Color)).Render(mark(c.Value == p.Selected))
		swatches = append(swatches, swatch)
	}
	selected := p.Selected
	for _, c := range p.Colors {
		if c.Value == p.Selected {
			selected = c.Name
		}
	}
	return p.Label + ": " + strings.Join(swatches, " ") + " " + selected
}

func renderButton(b showroom.Button, width int) string {
	style := lipgloss.NewStyle().
		Foreground(color(b.TextColor)).
		Background(color(b.BackgroundColor)).
		Align(lipgloss.Center)
	const text = "Add to Cart"
	switch b.Width {
	case showroom.WidthMedium:
		style = style.Width(len(text) + 8)
	case showroom.WidthLarge:
		style = style.Width(len(text) + 16)
	case showroom.WidthFull:
		style = style.Width(width)
	default:
		style = style.Padding(0, 2)
	}
	if b.BorderRadius > 0 {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(color(b.BackgroundColor))
	}
	button := style.Render(text)
	if shade := shadowRune(b.Shadow); shade != "" {
		button = lipgloss.JoinVertical(
			lipgloss.Left,
			button,
			Styles.Muted.Render(strings.Repeat(shade, lipgloss.Width(button))),
		)
	}
	return lipgloss.PlaceHorizontal(width, alignment(b.Alignment), button)
}

func shadowRune(s showroom.ShadowType) string {
	switch s {
	case showroom.ShadowSmall:
		return "▔"
	case showroom.ShadowMedium:
		return "▀"
	case showroom.ShadowLarge:
		return "█"
	}
	return ""
}
