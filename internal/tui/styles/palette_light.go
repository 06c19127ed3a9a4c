package styles

// LightTheme suits terminals with light backgrounds.
var LightTheme = Theme{
	Name: "light",
	Tokens: ThemeTokens{
		Background: "#FFFFFF",
		Panel:      "#F3F5F8",
		Text:       "#1F2328",
		TextMuted:  "#59636E",
		Border:     "#D1D9E0",
		Accent:     "#0969DA",
		Focus:      "#0550AE",
		Success:    "#1A7F37",
		Warning:    "#9A6700",
		Error:      "#CF222E",
	},
}
