package showroom

import "fmt"

// Choice is one selectable value of an enumerated field with its display
// label.
type Choice[T comparable] struct {
	Value T      `json:"value"`
	Label string `json:"label"`
}

// Catalog lists the values the editor offers for each enumerated field.
type Catalog struct {
	FontFamilies       []Choice[FontFamily]       `json:"fontFamilies"`
	FontWeights        []Choice[FontWeight]       `json:"fontWeights"`
	Shadows            []Choice[ShadowType]       `json:"shadows"`
	Alignments         []Choice[Alignment]        `json:"alignments"`
	ButtonWidths       []Choice[ButtonWidth]      `json:"buttonWidths"`
	GalleryAlignments  []Choice[GalleryAlignment] `json:"galleryAlignments"`
	Layouts            []Choice[LayoutType]       `json:"layouts"`
	CustomizationSlots []Choice[string]           `json:"customizationSlots"`
}

var (
	FontFamilies = []Choice[FontFamily]{
		{FontRoboto, "Roboto"},
		{FontInter, "Inter"},
		{FontPoppins, "Poppins"},
		{FontArial, "Arial"},
		{FontTimesNewRoman, "Times New Roman"},
	}
	FontWeights = []Choice[FontWeight]{
		{FontWeightRegular, "400"},
		{FontWeightMedium, "500"},
		{FontWeightSemiBold, "600"},
		{FontWeightBold, "700"},
	}
	Shadows = []Choice[ShadowType]{
		{ShadowNone, "None"},
		{ShadowSmall, "Small"},
		{ShadowMedium, "Medium"},
		{ShadowLarge, "Large"},
	}
	Alignments = []Choice[Alignment]{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
	}
	ButtonWidths = []Choice[ButtonWidth]{
		{WidthAuto, "Auto"},
		{WidthMedium, "Medium"},
		{WidthLarge, "Large"},
		{WidthFull, "Full Width"},
	}
	GalleryAlignments = []Choice[GalleryAlignment]{
		{GridLeft, "Grid Left"},
		{GridCenter, "Grid Center"},
		{GridRight, "Grid Right"},
	}
	Layouts = []Choice[LayoutType]{
		{Layout1, "Layout 1"},
		{Layout2, "Layout 2"},
	}
)

// DefaultCatalog bundles every option list for consumers that render
// pickers.
func DefaultCatalog() Catalog {
	return Catalog{
		FontFamilies:      FontFamilies,
		FontWeights:       FontWeights,
		Shadows:           Shadows,
		Alignments:        Alignments,
		ButtonWidths:      ButtonWidths,
		GalleryAlignments: GalleryAlignments,
		Layouts:           Layouts,
		CustomizationSlots: []Choice[string]{
			{OptionArms, "Arms"},
			{OptionFabric, "Fabric"},
			{OptionLeather, "Leather"},
			{OptionLegs, "Legs"},
		},
	}
}

// Parse looks value up among choices.
func Parse[T comparable](choices []Choice[T], value T) (T, error) {
	for _, c := range choices {
		if c.Value == value {
			return c.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unsupported value %v", value)
}

// Next returns the choice after current, wrapping around. An unknown current
// value yields the first choice; step may be negative.
func Next[T comparable](choices []Choice[T], current T, step int) T {
	if len(choices) == 0 {
		return current
	}
	idx := -1
	for i, c := range choices {
		if c.Value == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return choices[0].Value
	}
	n := len(choices)
	return choices[((idx+step)%n+n)%n].Value
}
