package showroom

import "fmt"

// Customization option keys accepted by [ProductControls.OnCustomizationChange].
const (
	OptionArms    = "arms"
	OptionFabric  = "fabric"
	OptionLeather = "leather"
	OptionLegs    = "legs"
)

// Controls is the read/write surface for editor widgets. Numeric setters
// clamp their input before it reaches the store.
type Controls struct {
	store *Store
}

func NewControls(s *Store) Controls {
	return Controls{store: s}
}

func (c Controls) Store() *Store { return c.store }

func (c Controls) Typography() TypographyControls { return TypographyControls(c) }
func (c Controls) Button() ButtonControls         { return ButtonControls(c) }
func (c Controls) Gallery() GalleryControls       { return GalleryControls(c) }
func (c Controls) Layout() LayoutControls         { return LayoutControls(c) }
func (c Controls) Stroke() StrokeControls         { return StrokeControls(c) }
func (c Controls) Product() ProductControls       { return ProductControls(c) }
func (c Controls) Manager() ManagerControls       { return ManagerControls(c) }

// ApplySectionPatch clamps the numeric members of patch the same way the
// per-field setters do, then merges it into its section.
func (c Controls) ApplySectionPatch(section Section, patch SectionPatch) error {
	switch p := patch.(type) {
	case TypographyPatch:
		p.FontSize = clampPtr(p.FontSize, ClampFontSize)
		patch = p
	case ButtonPatch:
		p.BorderRadius = clampPtr(p.BorderRadius, ClampNonNegative)
		patch = p
	case GalleryPatch:
		p.Spacing = clampPtr(p.Spacing, ClampNonNegative)
		p.BorderRadius = clampPtr(p.BorderRadius, ClampNonNegative)
		patch = p
	case LayoutPatch:
		p.CardCornerRadius = clampPtr(p.CardCornerRadius, ClampNonNegative)
		p.ContainerPadding = clampPtr(p.ContainerPadding, ClampNonNegative)
		patch = p
	case StrokePatch:
		p.Weight = clampPtr(p.Weight, ClampNonNegative)
		patch = p
	}
	return c.store.UpdateSection(section, patch)
}

func clampPtr(v *int, clamp func(int) int) *int {
	if v == nil {
		return nil
	}
	return Ptr(clamp(*v))
}

type TypographyControls struct{ store *Store }

func (c TypographyControls) Typography() Typography { return c.store.Typography() }

func (c TypographyControls) UpdateFontFamily(family FontFamily) {
	c.store.UpdateTypography(TypographyPatch{FontFamily: &family})
}

func (c TypographyControls) UpdateFontWeight(weight FontWeight) {
	c.store.UpdateTypography(TypographyPatch{FontWeight: &weight})
}

func (c TypographyControls) UpdateFontSize(size int) {
	c.store.UpdateTypography(TypographyPatch{FontSize: Ptr(ClampFontSize(size))})
}

type ButtonControls struct{ store *Store }

func (c ButtonControls) Button() Button { return c.store.Button() }

func (c ButtonControls) UpdateBorderRadius(radius int) {
	c.store.UpdateButton(ButtonPatch{BorderRadius: Ptr(ClampNonNegative(radius))})
}

func (c ButtonControls) UpdateShadow(shadow ShadowType) {
	c.store.UpdateButton(ButtonPatch{Shadow: &shadow})
}

func (c ButtonControls) UpdateAlignment(alignment Alignment) {
	c.store.UpdateButton(ButtonPatch{Alignment: &alignment})
}

func (c ButtonControls) UpdateWidth(width ButtonWidth) {
	c.store.UpdateButton(ButtonPatch{Width: &width})
}

func (c ButtonControls) UpdateBackgroundColor(color string) {
	c.store.UpdateButton(ButtonPatch{BackgroundColor: &color})
}

func (c ButtonControls) UpdateTextColor(color string) {
	c.store.UpdateButton(ButtonPatch{TextColor: &color})
}

type GalleryControls struct{ store *Store }

func (c GalleryControls) Gallery() Gallery { return c.store.Gallery() }

func (c GalleryControls) UpdateAlignment(alignment GalleryAlignment) {
	c.store.UpdateGallery(GalleryPatch{Alignment: &alignment})
}

func (c GalleryControls) UpdateSpacing(spacing int) {
	c.store.UpdateGallery(GalleryPatch{Spacing: Ptr(ClampNonNegative(spacing))})
}

func (c GalleryControls) UpdateBorderRadius(radius int) {
	c.store.UpdateGallery(GalleryPatch{BorderRadius: Ptr(ClampNonNegative(radius))})
}

type LayoutControls struct{ store *Store }

func (c LayoutControls) Layout() Layout            { return c.store.Layout() }
func (c LayoutControls) CurrentLayout() LayoutType { return c.store.CurrentLayout() }

func (c LayoutControls) UpdateCardCornerRadius(radius int) {
	c.store.UpdateLayout(LayoutPatch{CardCornerRadius: Ptr(ClampNonNegative(radius))})
}

func (c LayoutControls) UpdateContainerPadding(padding int) {
	c.store.UpdateLayout(LayoutPatch{ContainerPadding: Ptr(ClampNonNegative(padding))})
}

func (c LayoutControls) UpdateSectionBackgroundColor(color string) {
	c.store.UpdateLayout(LayoutPatch{SectionBackgroundColor: &color})
}

func (c LayoutControls) SwitchLayout(layout LayoutType) {
	c.store.SetCurrentLayout(layout)
}

type StrokeControls struct{ store *Store }

func (c StrokeControls) Stroke() Stroke { return c.store.Stroke() }

func (c StrokeControls) UpdateColor(color string) {
	c.store.UpdateStroke(StrokePatch{Color: &color})
}

func (c StrokeControls) UpdateWeight(weight int) {
	c.store.UpdateStroke(StrokePatch{Weight: Ptr(ClampNonNegative(weight))})
}

type ProductControls struct{ store *Store }

func (c ProductControls) Product() Product { return c.store.Product() }

// Images returns the gallery in display order.
func (c ProductControls) Images() []ProductImage {
	return c.store.Product().Images
}

func (c ProductControls) Customization() CustomizationOptions {
	return c.store.Product().Customization
}

// OnCustomizationChange records value as the selection of the named slot.
// The value is not checked against the slot's options.
func (c ProductControls) OnCustomizationChange(option, value string) error {
	var patch CustomizationPatch
	switch option {
	case OptionArms:
		patch.Arms = &DropdownPatch{Selected: &value}
	case OptionLegs:
		patch.Legs = &DropdownPatch{Selected: &value}
	case OptionFabric:
		patch.Fabric = &PalettePatch{Selected: &value}
	case OptionLeather:
		patch.Leather = &PalettePatch{Selected: &value}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	c.store.UpdateProduct(ProductPatch{Customization: &patch})
	return nil
}

type ManagerControls struct{ store *Store }

func (c ManagerControls) Configuration() Configuration { return c.store.Configuration() }

func (c ManagerControls) Reset() { c.store.Reset() }

func (c ManagerControls) Export() (string, error) { return c.store.ExportConfiguration() }

func (c ManagerControls) Import(text string) bool { return c.store.ImportConfiguration(text) }

// FileName is the suggested name for an export taken now.
func (c ManagerControls) FileName() string {
	return ExportFileName(c.store.now())
}

// ExportFile returns the document together with its suggested file name.
func (c ManagerControls) ExportFile() (name string, content string, err error) {
	content, err = c.store.ExportConfiguration()
	if err != nil {
		return "", "", err
	}
	return c.FileName(), content, nil
}
