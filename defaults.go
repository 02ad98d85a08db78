package showroom

const defaultImageURL = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop"

// DefaultConfiguration builds the compiled-in default tree. Every call
// allocates fresh slices, so the result can be handed to a store without
// sharing anything with earlier copies.
func DefaultConfiguration() Configuration {
	return Configuration{
		Typography: Typography{
			FontFamily: FontInter,
			FontWeight: FontWeightRegular,
			FontSize:   16,
		},
		Button: Button{
			BorderRadius:    8,
			Shadow:          ShadowSmall,
			Alignment:       AlignCenter,
			Width:           WidthAuto,
			BackgroundColor: "#3B82F6",
			TextColor:       "#FFFFFF",
		},
		Gallery: Gallery{
			Alignment:    GridCenter,
			Spacing:      16,
			BorderRadius: 8,
		},
		Layout: Layout{
			CardCornerRadius:       12,
			ContainerPadding:       24,
			SectionBackgroundColor: "#F8FAFC",
		},
		Stroke: Stroke{
			Color:  "#E2E8F0",
			Weight: 1,
		},
		Product:       defaultProduct(),
		CurrentLayout: Layout1,
	}
}

func defaultProduct() Product {
	return Product{
		Title:    "Cozy Longe Chair",
		Price:    200,
		Currency: "$",
		Images: []ProductImage{
			{ID: "1", URL: defaultImageURL + "&w=1000&q=80", Alt: "Cozy Longe Chair - Front View", IsMain: true},
			{ID: "2", URL: defaultImageURL + "&w=1000&q=80", Alt: "Cozy Longe Chair - Front View"},
			{ID: "3", URL: defaultImageURL + "&w=1000&q=80", Alt: "Cozy Longe Chair - Front View"},
			{ID: "4", URL: defaultImageURL + "&w=1000&q=80", Alt: "Cozy Longe Chair - Front View"},
			{ID: "5", URL: defaultImageURL + "&w=800&q=80", Alt: "Cozy Longe Chair"},
		},
		Customization: CustomizationOptions{
			Arms: DropdownOption{
				Label:    "Arms",
				Selected: "walnut-brown",
				Options: []DropdownItem{
					{Value: "walnut-brown", Label: "Walnut Brown"},
					{Value: "oak-natural", Label: "Oak Natural"},
					{Value: "cherry-wood", Label: "Cherry Wood"},
				},
			},
			Fabric: ColorPalette{
				Label:    "Fabric",
				Selected: "brown-leather",
				Colors: []PaletteItem{
					{Value: "brown-leather", Name: "Brown Leather", Color: "#8B4513"},
					{Value: "dark-brown", Name: "Dark Brown", Color: "#654321"},
					{Value: "black-leather", Name: "Black Leather", Color: "#2C2C2C"},
					{Value: "gray-fabric", Name: "Gray Fabric", Color: "#696969"},
					{Value: "blue-fabric", Name: "Blue Fabric", Color: "#4682B4"},
					{Value: "green-fabric", Name: "Green Fabric", Color: "#228B22"},
				},
			},
			Leather: ColorPalette{
				Label:    "Leather Brown",
				Selected: "cognac",
				Colors: []PaletteItem{
					{Value: "cognac", Name: "Cognac", Color: "#A0522D"},
					{Value: "chocolate", Name: "Chocolate", Color: "#7B3F00"},
					{Value: "espresso", Name: "Espresso", Color: "#4A2C2A"},
					{Value: "caramel", Name: "Caramel", Color: "#D2691E"},
					{Value: "mahogany", Name: "Mahogany", Color: "#C04000"},
					{Value: "burgundy", Name: "Burgundy", Color: "#800020"},
				},
			},
			Legs: DropdownOption{
				Label:    "Legs Finish",
				Selected: "dark-walnut",
				Options: []DropdownItem{
					{Value: "dark-walnut", Label: "Dark Walnut"},
					{Value: "natural-oak", Label: "Natural Oak"},
					{Value: "black-stain", Label: "Black Stain"},
					{Value: "white-wash", Label: "White Wash"},
				},
			},
		},
	}
}
