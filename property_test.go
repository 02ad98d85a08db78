package showroom

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genImage() gopter.Gen {
	return gopter.CombineGens(
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Bool(),
	).Map(func(v []any) ProductImage {
		return ProductImage{
			ID:     v[0].(string),
			URL:    "https://example.com/" + v[1].(string),
			Alt:    v[2].(string),
			IsMain: v[3].(bool),
		}
	})
}

func genConfiguration() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(FontRoboto, FontInter, FontPoppins, FontArial, FontTimesNewRoman),
		gen.OneConstOf(FontWeightRegular, FontWeightMedium, FontWeightSemiBold, FontWeightBold),
		gen.IntRange(MinFontSize, MaxFontSize),
		gen.IntRange(0, 64),
		gen.OneConstOf(ShadowNone, ShadowSmall, ShadowMedium, ShadowLarge),
		gen.OneConstOf(WidthAuto, WidthMedium, WidthLarge, WidthFull),
		gen.AlphaString(),
		gen.IntRange(0, 64),
		gen.OneConstOf(GridLeft, GridCenter, GridRight),
		gen.AlphaString(),
		gen.Float64Range(0, 1e6),
		gen.SliceOf(genImage()),
		gen.OneConstOf(Layout1, Layout2),
		gen.AlphaString(),
	).Map(func(v []any) Configuration {
		cfg := DefaultConfiguration()
		cfg.Typography = Typography{
			FontFamily: v[0].(FontFamily),
			FontWeight: v[1].(FontWeight),
			FontSize:   v[2].(int),
		}
		cfg.Button.BorderRadius = v[3].(int)
		cfg.Button.Shadow = v[4].(ShadowType)
		cfg.Button.Width = v[5].(ButtonWidth)
		cfg.Button.BackgroundColor = v[6].(string)
		cfg.Gallery.Spacing = v[7].(int)
		cfg.Gallery.Alignment = v[8].(GalleryAlignment)
		cfg.Product.Title = v[9].(string)
		cfg.Product.Price = v[10].(float64)
		cfg.Product.Images = v[11].([]ProductImage)
		cfg.CurrentLayout = v[12].(LayoutType)
		cfg.Product.Customization.Fabric.Selected = v[13].(string)
		return cfg
	})
}

func storeWith(cfg Configuration) *Store {
	s := NewStore()
	s.UpdateConfiguration(ConfigurationPatch{
		Typography:    &cfg.Typography,
		Button:        &cfg.Button,
		Gallery:       &cfg.Gallery,
		Layout:        &cfg.Layout,
		Stroke:        &cfg.Stroke,
		Product:       &cfg.Product,
		CurrentLayout: &cfg.CurrentLayout,
	})
	return s
}

func TestClampProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("font size is bounded to [10, 60]", prop.ForAll(
		func(n int) bool {
			s := NewStore()
			NewControls(s).Typography().UpdateFontSize(n)
			return s.Typography().FontSize == max(MinFontSize, min(MaxFontSize, n))
		},
		gen.Int(),
	))

	properties.Property("radii, spacing and padding never go negative", prop.ForAll(
		func(n int) bool {
			s := NewStore()
			c := NewControls(s)
			c.Button().UpdateBorderRadius(n)
			c.Gallery().UpdateSpacing(n)
			c.Layout().UpdateContainerPadding(n)
			got := s.Configuration()
			want := max(0, n)
			return got.Button.BorderRadius == want &&
				got.Gallery.Spacing == want &&
				got.Layout.ContainerPadding == want
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestStoreProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("import of an export restores the same tree", prop.ForAll(
		func(cfg Configuration) bool {
			s := storeWith(cfg)
			before := s.Configuration()
			text, err := s.ExportConfiguration()
			if err != nil {
				return false
			}
			s.Reset()
			return s.ImportConfiguration(text) &&
				reflect.DeepEqual(s.Configuration(), before)
		},
		genConfiguration(),
	))

	properties.Property("reset is idempotent", prop.ForAll(
		func(cfg Configuration) bool {
			s := storeWith(cfg)
			s.Reset()
			once := s.Configuration()
			s.Reset()
			return reflect.DeepEqual(once, s.Configuration()) &&
				reflect.DeepEqual(once, DefaultConfiguration())
		},
		genConfiguration(),
	))

	properties.Property("gallery writes leave other sections alone", prop.ForAll(
		func(cfg Configuration, spacing int) bool {
			s := storeWith(cfg)
			before := s.Configuration()
			s.UpdateGallery(GalleryPatch{Spacing: &spacing})
			after := s.Configuration()
			after.Gallery = before.Gallery
			return reflect.DeepEqual(after, before)
		},
		genConfiguration(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
