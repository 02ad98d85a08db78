package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/pkg/util"
)

var (
	errNotNumber = errors.New("value must be a whole number")
	errBadColor  = errors.New("value must be #RGB, #RRGGBB or rgb(r, g, b)")
)

// Field is one editable member of the tree as shown in a section editor.
// Enumerated fields set Cycle and are changed with left/right; the rest set
// Set and are edited as text.
type Field struct {
	Name  string
	Get   func(showroom.Configuration) string
	Set   func(showroom.Controls, string) error
	Cycle func(showroom.Controls, showroom.Configuration, int)
}

func (f Field) IsEnum() bool {
	return f.Cycle != nil
}

func enumField[T comparable](
	name string,
	choices []showroom.Choice[T],
	get func(showroom.Configuration) T,
	set func(showroom.Controls, T),
) Field {
	return Field{
		Name: name,
		Get: func(cfg showroom.Configuration) string {
			return label(choices, get(cfg))
		},
		Cycle: func(c showroom.Controls, cfg showroom.Configuration, step int) {
			set(c, showroom.Next(choices, get(cfg), step))
		},
	}
}

func numberField(
	name string,
	get func(showroom.Configuration) int,
	set func(showroom.Controls, int),
) Field {
	return Field{
		Name: name,
		Get: func(cfg showroom.Configuration) string {
			return strconv.Itoa(get(cfg))
		},
		Set: func(c showroom.Controls, value string) error {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return errNotNumber
			}
			set(c, n)
			return nil
		},
	}
}

func colorField(
	name string,
	get func(showroom.Configuration) string,
	set func(showroom.Controls, string),
) Field {
	return Field{
		Name: name,
		Get:  get,
		Set: func(c showroom.Controls, value string) error {
			value = strings.TrimSpace(value)
			if !showroom.IsValidColor(value) {
				return errBadColor
			}
			set(c, value)
			return nil
		},
	}
}

func label[T comparable](choices []showroom.Choice[T], v T) string {
	for _, c := range choices {
		if c.Value == v {
			return c.Label
		}
	}
	return fmt.Sprint(v)
}

// FieldsFor lists the fields of a tab. Product fields depend on the option
// lists currently in the tree.
func FieldsFor(tab Tab, cfg showroom.Configuration) []Field {
	switch tab {
	case TabTypography:
		return typographyFields
	case TabProduct:
		return productFields(cfg.Product.Customization)
	default:
		return designFields
	}
}

var typographyFields = []Field{
	enumField("Font family", showroom.FontFamilies,
		func(c showroom.Configuration) showroom.FontFamily { return c.Typography.FontFamily },
		func(c showroom.Controls, v showroom.FontFamily) { c.Typography().UpdateFontFamily(v) }),
	enumField("Font weight", showroom.FontWeights,
		func(c showroom.Configuration) showroom.FontWeight { return c.Typography.FontWeight },
		func(c showroom.Controls, v showroom.FontWeight) { c.Typography().UpdateFontWeight(v) }),
	numberField("Font size",
		func(c showroom.Configuration) int { return c.Typography.FontSize },
		func(c showroom.Controls, v int) { c.Typography().UpdateFontSize(v) }),
}

var designFields = []Field{
	enumField("Layout", showroom.Layouts,
		func(c showroom.Configuration) showroom.LayoutType { return c.CurrentLayout },
		func(c showroom.Controls, v showroom.LayoutType) { c.Layout().SwitchLayout(v) }),
	numberField("Card corner radius",
		func(c showroom.Configuration) int { return c.Layout.CardCornerRadius },
		func(c showroom.Controls, v int) { c.Layout().UpdateCardCornerRadius(v) }),
	numberField("Container padding",
		func(c showroom.Configuration) int { return c.Layout.ContainerPadding },
		func(c showroom.Controls, v int) { c.Layout().UpdateContainerPadding(v) }),
	colorField("Section background",
		func(c showroom.Configuration) string { return c.Layout.SectionBackgroundColor },
		func(c showroom.Controls, v string) { c.Layout().UpdateSectionBackgroundColor(v) }),
	numberField("Button radius",
		func(c showroom.Configuration) int { return c.Button.BorderRadius },
		func(c showroom.Controls, v int) { c.Button().UpdateBorderRadius(v) }),
	enumField("Button shadow", showroom.Shadows,
		func(c showroom.Configuration) showroom.ShadowType { return c.Button.Shadow },
		func(c showroom.Controls, v showroom.ShadowType) { c.Button().UpdateShadow(v) }),
	enumField("Button alignment", showroom.Alignments,
		func(c showroom.Configuration) showroom.Alignment { return c.Button.Alignment },
		func(c showroom.Controls, v showroom.Alignment) { c.Button().UpdateAlignment(v) }),
	enumField("Button width", showroom.ButtonWidths,
		func(c showroom.Configuration) showroom.ButtonWidth { return c.Button.Width },
		func(c showroom.Controls, v showroom.ButtonWidth) { c.Button().UpdateWidth(v) }),
	colorField("Button background",
		func(c showroom.Configuration) string { return c.Button.BackgroundColor },
		func(c showroom.Controls, v string) { c.Button().UpdateBackgroundColor(v) }),
	colorField("Button text",
		func(c showroom.Configuration) string { return c.Button.TextColor },
		func(c showroom.Controls, v string) { c.Button().UpdateTextColor(v) }),
	enumField("Gallery alignment", showroom.GalleryAlignments,
		func(c showroom.Configuration) showroom.GalleryAlignment { return c.Gallery.Alignment },
		func(c showroom.Controls, v showroom.GalleryAlignment) { c.Gallery().UpdateAlignment(v) }),
	numberField("Gallery spacing",
		func(c showroom.Configuration) int { return c.Gallery.Spacing },
		func(c showroom.Controls, v int) { c.Gallery().UpdateSpacing(v) }),
	numberField("Gallery radius",
		func(c showroom.Configuration) int { return c.Gallery.BorderRadius },
		func(c showroom.Controls, v int) { c.Gallery().UpdateBorderRadius(v) }),
	colorField("Stroke color",
		func(c showroom.Configuration) string { return c.Stroke.Color },
		func(c showroom.Controls, v string) { c.Stroke().UpdateColor(v) }),
	numberField("Stroke weight",
		func(c showroom.Configuration) int { return c.Stroke.Weight },
		func(c showroom.Controls, v int) { c.Stroke().UpdateWeight(v) }),
}

func productFields(o showroom.CustomizationOptions) []Field {
	return []Field{
		slotField(showroom.OptionArms, o.Arms.Label, dropdownChoices(o.Arms),
			func(c showroom.Configuration) string { return c.Product.Customization.Arms.Selected }),
		slotField(showroom.OptionFabric, o.Fabric.Label, paletteChoices(o.Fabric),
			func(c showroom.Configuration) string { return c.Product.Customization.Fabric.Selected }),
		slotField(showroom.OptionLeather, o.Leather.Label, paletteChoices(o.Leather),
			func(c showroom.Configuration) string { return c.Product.Customization.Leather.Selected }),
		slotField(showroom.OptionLegs, o.Legs.Label, dropdownChoices(o.Legs),
			func(c showroom.Configuration) string { return c.Product.Customization.Legs.Selected }),
	}
}

func slotField(
	option, name string,
	choices []showroom.Choice[string],
	get func(showroom.Configuration) string,
) Field {
	if name == "" {
		name = option
	}
	return enumField(name, choices, get, func(c showroom.Controls, v string) {
		// option is one of the four known keys
		_ = c.Product().OnCustomizationChange(option, v)
	})
}

func dropdownChoices(d showroom.DropdownOption) []showroom.Choice[string] {
	return util.Map(d.Options, func(o showroom.DropdownItem) showroom.Choice[string] {
		return showroom.Choice[string]{Value: o.Value, Label: o.Label}
	})
}

func paletteChoices(p showroom.ColorPalette) []showroom.Choice[string] {
	return util.Map(p.Colors, func(c showroom.PaletteItem) showroom.Choice[string] {
		return showroom.Choice[string]{Value: c.Value, Label: c.Name}
	})
}
