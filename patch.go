package showroom

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Section names one of the six independently patchable groups of the tree.
type Section string

const (
	SectionTypography Section = "typography"
	SectionButton     Section = "button"
	SectionGallery    Section = "gallery"
	SectionLayout     Section = "layout"
	SectionStroke     Section = "stroke"
	SectionProduct    Section = "product"
)

// Sections lists every section in tree order.
var Sections = []Section{
	SectionTypography,
	SectionButton,
	SectionGallery,
	SectionLayout,
	SectionStroke,
	SectionProduct,
}

func (s Section) Valid() bool {
	return slices.Contains(Sections, s)
}

func ParseSection(name string) (Section, error) {
	s := Section(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return s, nil
}

// SectionPatch is a partial value of one section. Nil fields are left
// untouched when the patch is merged.
type SectionPatch interface {
	Section() Section
	mergeInto(c Configuration) Configuration
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}

func merge[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func mergeSlice[T any](dst *[]T, v *[]T) {
	if v != nil {
		*dst = slices.Clone(*v)
	}
}

type TypographyPatch struct {
	FontFamily *FontFamily `json:"fontFamily,omitempty"`
	FontWeight *FontWeight `json:"fontWeight,omitempty"`
	FontSize   *int        `json:"fontSize,omitempty"`
}

func (TypographyPatch) Section() Section { return SectionTypography }

func (p TypographyPatch) apply(t Typography) Typography {
	merge(&t.FontFamily, p.FontFamily)
	merge(&t.FontWeight, p.FontWeight)
	merge(&t.FontSize, p.FontSize)
	return t
}

func (p TypographyPatch) mergeInto(c Configuration) Configuration {
	c.Typography = p.apply(c.Typography)
	return c
}

type ButtonPatch struct {
	BorderRadius    *int         `json:"borderRadius,omitempty"`
	Shadow          *ShadowType  `json:"shadow,omitempty"`
	Alignment       *Alignment   `json:"alignment,omitempty"`
	Width           *ButtonWidth `json:"width,omitempty"`
	BackgroundColor *string      `json:"backgroundColor,omitempty"`
	TextColor       *string      `json:"textColor,omitempty"`
}

func (ButtonPatch) Section() Section { return SectionButton }

func (p ButtonPatch) apply(b Button) Button {
	merge(&b.BorderRadius, p.BorderRadius)
	merge(&b.Shadow, p.Shadow)
	merge(&b.Alignment, p.Alignment)
	merge(&b.Width, p.Width)
	merge(&b.BackgroundColor, p.BackgroundColor)
	merge(&b.TextColor, p.TextColor)
	return b
}

func (p ButtonPatch) mergeInto(c Configuration) Configuration {
	c.Button = p.apply(c.Button)
	return c
}

type GalleryPatch struct {
	Alignment    *GalleryAlignment `json:"alignment,omitempty"`
	Spacing      *int              `json:"spacing,omitempty"`
	BorderRadius *int              `json:"borderRadius,omitempty"`
}

func (GalleryPatch) Section() Section { return SectionGallery }

func (p GalleryPatch) apply(g Gallery) Gallery {
	merge(&g.Alignment, p.Alignment)
	merge(&g.Spacing, p.Spacing)
	merge(&g.BorderRadius, p.BorderRadius)
	return g
}

func (p GalleryPatch) mergeInto(c Configuration) Configuration {
	c.Gallery = p.apply(c.Gallery)
	return c
}

type LayoutPatch struct {
	CardCornerRadius       *int    `json:"cardCornerRadius,omitempty"`
	ContainerPadding       *int    `json:"containerPadding,omitempty"`
	SectionBackgroundColor *string `json:"sectionBackgroundColor,omitempty"`
}

func (LayoutPatch) Section() Section { return SectionLayout }

func (p LayoutPatch) apply(l Layout) Layout {
	merge(&l.CardCornerRadius, p.CardCornerRadius)
	merge(&l.ContainerPadding, p.ContainerPadding)
	merge(&l.SectionBackgroundColor, p.SectionBackgroundColor)
	return l
}

func (p LayoutPatch) mergeInto(c Configuration) Configuration {
	c.Layout = p.apply(c.Layout)
	return c
}

type StrokePatch struct {
	Color  *string `json:"color,omitempty"`
	Weight *int    `json:"weight,omitempty"`
}

func (StrokePatch) Section() Section { return SectionStroke }

func (p StrokePatch) apply(s Stroke) Stroke {
	merge(&s.Color, p.Color)
	merge(&s.Weight, p.Weight)
	return s
}

func (p StrokePatch) mergeInto(c Configuration) Configuration {
	c.Stroke = p.apply(c.Stroke)
	return c
}

// ProductPatch merges recursively: a customization patch only touches the
// slots and fields it names. Slices are replaced as a whole.
type ProductPatch struct {
	Title         *string             `json:"title,omitempty"`
	Price         *float64            `json:"price,omitempty"`
	Currency      *string             `json:"currency,omitempty"`
	Images        *[]ProductImage     `json:"images,omitempty"`
	Customization *CustomizationPatch `json:"customization,omitempty"`
}

type CustomizationPatch struct {
	Arms    *DropdownPatch `json:"arms,omitempty"`
	Fabric  *PalettePatch  `json:"fabric,omitempty"`
	Leather *PalettePatch  `json:"leather,omitempty"`
	Legs    *DropdownPatch `json:"legs,omitempty"`
}

type DropdownPatch struct {
	Label    *string         `json:"label,omitempty"`
	Selected *string         `json:"selected,omitempty"`
	Options  *[]DropdownItem `json:"options,omitempty"`
}

type PalettePatch struct {
	Label    *string        `json:"label,omitempty"`
	Selected *string        `json:"selected,omitempty"`
	Colors   *[]PaletteItem `json:"colors,omitempty"`
}

func (ProductPatch) Section() Section { return SectionProduct }

func (p ProductPatch) apply(pr Product) Product {
	merge(&pr.Title, p.Title)
	merge(&pr.Price, p.Price)
	merge(&pr.Currency, p.Currency)
	mergeSlice(&pr.Images, p.Images)
	if p.Customization != nil {
		pr.Customization = p.Customization.apply(pr.Customization)
	}
	return pr
}

func (p ProductPatch) mergeInto(c Configuration) Configuration {
	c.Product = p.apply(c.Product)
	return c
}

func (p CustomizationPatch) apply(o CustomizationOptions) CustomizationOptions {
	if p.Arms != nil {
		o.Arms = p.Arms.apply(o.Arms)
	}
	if p.Fabric != nil {
		o.Fabric = p.Fabric.apply(o.Fabric)
	}
	if p.Leather != nil {
		o.Leather = p.Leather.apply(o.Leather)
	}
	if p.Legs != nil {
		o.Legs = p.Legs.apply(o.Legs)
	}
	return o
}

func (p DropdownPatch) apply(d DropdownOption) DropdownOption {
	merge(&d.Label, p.Label)
	merge(&d.Selected, p.Selected)
	mergeSlice(&d.Options, p.Options)
	return d
}

func (p PalettePatch) apply(cp ColorPalette) ColorPalette {
	merge(&cp.Label, p.Label)
	merge(&cp.Selected, p.Selected)
	mergeSlice(&cp.Colors, p.Colors)
	return cp
}

// ConfigurationPatch replaces whole sections: every non-nil field
// overwrites the corresponding part of the tree without merging into it.
type ConfigurationPatch struct {
	Typography    *Typography `json:"typography,omitempty"`
	Button        *Button     `json:"button,omitempty"`
	Gallery       *Gallery    `json:"gallery,omitempty"`
	Layout        *Layout     `json:"layout,omitempty"`
	Stroke        *Stroke     `json:"stroke,omitempty"`
	Product       *Product    `json:"product,omitempty"`
	CurrentLayout *LayoutType `json:"currentLayout,omitempty"`
}

func (p ConfigurationPatch) apply(c Configuration) Configuration {
	merge(&c.Typography, p.Typography)
	merge(&c.Button, p.Button)
	merge(&c.Gallery, p.Gallery)
	merge(&c.Layout, p.Layout)
	merge(&c.Stroke, p.Stroke)
	merge(&c.Product, p.Product)
	merge(&c.CurrentLayout, p.CurrentLayout)
	return c
}

// DecodeSectionPatch decodes a JSON object into the patch type of section.
func DecodeSectionPatch(section Section, data []byte) (SectionPatch, error) {
	var (
		patch SectionPatch
		err   error
	)
	switch section {
	case SectionTypography:
		patch, err = decodePatch[TypographyPatch](data)
	case SectionButton:
		patch, err = decodePatch[ButtonPatch](data)
	case SectionGallery:
		patch, err = decodePatch[GalleryPatch](data)
	case SectionLayout:
		patch, err = decodePatch[LayoutPatch](data)
	case SectionStroke:
		patch, err = decodePatch[StrokePatch](data)
	case SectionProduct:
		patch, err = decodePatch[ProductPatch](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s patch: %w", section, err)
	}
	return patch, nil
}

func decodePatch[P SectionPatch](data []byte) (SectionPatch, error) {
	var p P
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}
