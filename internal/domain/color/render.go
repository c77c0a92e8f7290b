package color

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var functionalPattern = regexp.MustCompile(`^(rgba?|hsla?)\((.*)\)$`)

// ToHex resolves v to a "#rrggbb" string suitable for a terminal background.
// Alpha is dropped. It reports false for None, for keywords that have no fixed
// color (transparent, currentcolor) and for anything it cannot parse.
func ToHex(v Value) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(string(v)))
	if s == "" {
		return "", false
	}

	if strings.HasPrefix(s, "#") {
		return hexToHex(s[1:])
	}

	if rgba, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c.Hex(), true
	}

	m := functionalPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	args := splitArgs(m[2])
	if len(args) < 3 {
		return "", false
	}

	switch m[1] {
	case "rgb", "rgba":
		var ch [3]float64
		for i := 0; i < 3; i++ {
			f, ok := channel(args[i], 255)
			if !ok {
				return "", false
			}
			ch[i] = f / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Clamped().Hex(), true
	default:
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return "", false
		}
		sat, ok := channel(args[1], 1)
		if !ok {
			return "", false
		}
		light, ok := channel(args[2], 1)
		if !ok {
			return "", false
		}
		return colorful.Hsl(h, sat, light).Clamped().Hex(), true
	}
}

// Contrast returns a foreground color that stays readable on top of v.
func Contrast(v Value) string {
	hex, ok := ToHex(v)
	if !ok {
		return ""
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

func hexToHex(digits string) (string, bool) {
	switch len(digits) {
	case 4:
		digits = digits[:3]
	case 8:
		digits = digits[:6]
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func splitArgs(body string) []string {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// channel parses a bare number or a percentage of max.
func channel(raw string, max float64) (float64, bool) {
	if strings.HasSuffix(raw, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f / 100 * max, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
