package content

// Ink colors available to the octopus. Rainbow is the bonus round color.
const (
	InkDarkBlue = "dark_blue"
	InkPurple   = "purple"
	InkGreen    = "green"
	InkRed      = "red"
	InkRainbow  = "rainbow"
)

// InkColors lists every color in pool/spawn order.
var InkColors = []string{InkDarkBlue, InkPurple, InkGreen, InkRed, InkRainbow}

// inkDamage is the base load per hit for each color before the arm
// multiplier is applied.
var inkDamage = map[string]int{
	InkDarkBlue: 10,
	InkPurple:   12,
	InkGreen:    14,
	InkRed:      16,
	InkRainbow:  25,
}

// InkDamage returns the base damage for a color, falling back to dark blue
// for unknown names.
func InkDamage(color string) int {
	if d, ok := inkDamage[color]; ok {
		return d
	}
	return inkDamage[InkDarkBlue]
}

// NormalizeInkColor maps unknown color names onto the default.
func NormalizeInkColor(color string) string {
	if _, ok := inkDamage[color]; ok {
		return color
	}
	return InkDarkBlue
}
