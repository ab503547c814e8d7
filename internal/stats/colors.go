// internal/stats/colors.go
package stats

// ColorBand is the gradient used for a language bar, with a flat hex fallback.
type ColorBand struct {
	Class string
	Hex   string
}

// DefaultColor is used for any language missing from the table.
var DefaultColor = ColorBand{Class: "from-gray-400 to-gray-600", Hex: "#586069"}

var languageColors = map[string]ColorBand{
	"JavaScript": {Class: "from-yellow-400 to-yellow-600", Hex: "#f1e05a"},
	"TypeScript": {Class: "from-blue-400 to-blue-600", Hex: "#3178c6"},
	"Python":     {Class: "from-green-400 to-green-600", Hex: "#3572a5"},
	"HTML":       {Class: "from-orange-400 to-orange-600", Hex: "#e34c26"},
	"CSS":        {Class: "from-blue-300 to-blue-500", Hex: "#563d7c"},
	"React":      {Class: "from-cyan-400 to-cyan-600", Hex: "#61dafb"},
}

// LanguageColor looks up the color band for a language label (case-sensitive).
func LanguageColor(language string) ColorBand {
	if band, ok := languageColors[language]; ok {
		return band
	}
	return DefaultColor
}
