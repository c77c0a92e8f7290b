package swatch

// DefaultCustomLimit caps how many custom colors are remembered.
const DefaultCustomLimit = 10

// DefaultPresets is the stock editor palette.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Light Green", Value: "#BFEDD2"},
		{Name: "Light Yellow", Value: "#FBEEB8"},
		{Name: "Light Red", Value: "#F8CAC6"},
		{Name: "Light Purple", Value: "#ECCAFA"},
		{Name: "Light Blue", Value: "#C2E0F4"},
		{Name: "Green", Value: "#2DC26B"},
		{Name: "Yellow", Value: "#F1C40F"},
		{Name: "Red", Value: "#E03E2D"},
		{Name: "Purple", Value: "#B96AD9"},
		{Name: "Blue", Value: "#3598DB"},
		{Name: "Dark Turquoise", Value: "#169179"},
		{Name: "Orange", Value: "#E67E23"},
		{Name: "Dark Red", Value: "#BA372A"},
		{Name: "Dark Purple", Value: "#843FA1"},
		{Name: "Dark Blue", Value: "#236FA1"},
		{Name: "Light Gray", Value: "#ECF0F1"},
		{Name: "Medium Gray", Value: "#CED4D9"},
		{Name: "Gray", Value: "#95A5A6"},
		{Name: "Dark Gray", Value: "#7E8C8D"},
		{Name: "Navy Blue", Value: "#34495E"},
		{Name: "Black", Value: "#000000"},
		{Name: "White", Value: "#ffffff"},
	}
}
