// Package showroom holds the configuration tree behind the live product
// editor and the operations that read, patch, reset, export and import it.
package showroom

type (
	FontFamily       string
	FontWeight       int
	ShadowType       string
	Alignment        string
	ButtonWidth      string
	GalleryAlignment string
	LayoutType       string
)

const (
	FontRoboto        FontFamily = "Roboto"
	FontInter         FontFamily = "Inter"
	FontPoppins       FontFamily = "Poppins"
	FontArial         FontFamily = "Arial"
	FontTimesNewRoman FontFamily = "Times New Roman"
)

const (
	FontWeightRegular  FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemiBold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

const (
	ShadowNone   ShadowType = "none"
	ShadowSmall  ShadowType = "small"
	ShadowMedium ShadowType = "medium"
	ShadowLarge  ShadowType = "large"
)

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

const (
	WidthAuto   ButtonWidth = "auto"
	WidthMedium ButtonWidth = "medium"
	WidthLarge  ButtonWidth = "large"
	WidthFull   ButtonWidth = "full"
)

const (
	GridLeft   GalleryAlignment = "grid-left"
	GridCenter GalleryAlignment = "grid-center"
	GridRight  GalleryAlignment = "grid-right"
)

const (
	Layout1 LayoutType = "layout1"
	Layout2 LayoutType = "layout2"
)

// Configuration is the whole editor state. Values returned by the store
// share their slices with it and must be treated as read-only.
type Configuration struct {
	Typography    Typography `json:"typography"`
	Button        Button     `json:"button"`
	Gallery       Gallery    `json:"gallery"`
	Layout        Layout     `json:"layout"`
	Stroke        Stroke     `json:"stroke"`
	Product       Product    `json:"product"`
	CurrentLayout LayoutType `json:"currentLayout"`
}

type Typography struct {
	FontFamily FontFamily `json:"fontFamily"`
	FontWeight FontWeight `json:"fontWeight"`
	// Pixels, 10 to 60 when written through Controls.
	FontSize int `json:"fontSize"`
}

type Button struct {
	BorderRadius    int         `json:"borderRadius"`
	Shadow          ShadowType  `json:"shadow"`
	Alignment       Alignment   `json:"alignment"`
	Width           ButtonWidth `json:"width"`
	BackgroundColor string      `json:"backgroundColor"`
	TextColor       string      `json:"textColor"`
}

type Gallery struct {
	Alignment    GalleryAlignment `json:"alignment"`
	Spacing      int              `json:"spacing"`
	BorderRadius int              `json:"borderRadius"`
}

// Layout holds visual sizing of the preview. The arrangement itself is
// selected by Configuration.CurrentLayout.
type Layout struct {
	CardCornerRadius       int    `json:"cardCornerRadius"`
	ContainerPadding       int    `json:"containerPadding"`
	SectionBackgroundColor string `json:"sectionBackgroundColor"`
}

type Stroke struct {
	Color  string `json:"color"`
	Weight int    `json:"weight"`
}

type Product struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	// Display order of the gallery.
	Images        []ProductImage       `json:"images"`
	Customization CustomizationOptions `json:"customization"`
}

type ProductImage struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"isMain,omitempty"`
}

type CustomizationOptions struct {
	Arms    DropdownOption `json:"arms"`
	Fabric  ColorPalette   `json:"fabric"`
	Leather ColorPalette   `json:"leather"`
	Legs    DropdownOption `json:"legs"`
}

type DropdownOption struct {
	Label    string         `json:"label"`
	Selected string         `json:"selected"`
	Options  []DropdownItem `json:"options"`
}

type DropdownItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ColorPalette struct {
	Label    string        `json:"label"`
	Selected string        `json:"selected"`
	Colors   []PaletteItem `json:"colors"`
}

type PaletteItem struct {
	Value string `json:"value"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Has reports whether value is one of the listed options.
func (d DropdownOption) Has(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Has reports whether value is one of the palette colors.
func (p ColorPalette) Has(value string) bool {
	for _, c := range p.Colors {
		if c.Value == value {
			return true
		}
	}
	return false
}

// MainImage returns the first image flagged as main, falling back to the
// first image of the gallery.
func (p Product) MainImage() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.IsMain {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return ProductImage{}, false
}
