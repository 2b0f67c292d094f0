package calculator

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"Jyotish/internal/model"
)

// NakshatraSpan is the arc of one lunar mansion: 13°20′.
const NakshatraSpan = 360.0 / model.NakshatraCount

// PadaSpan is a quarter of a nakshatra: 3°20′.
const PadaSpan = NakshatraSpan / 4

// NakshatraLords is the repeating ruler cycle starting at Ashwini. The same order
// drives the Vimshottari sequence.
var NakshatraLords = [9]model.Planet{
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars,
	model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
}

// SignOf returns the zodiac sign containing the longitude.
func SignOf(lon float64) model.Sign {
	return model.Sign(int(math.Floor(Normalize(lon)/30)) % 12)
}

// NakshatraOf returns the mansion, pada (1..4) and ruling planet for a longitude.
func NakshatraOf(lon float64) (model.Nakshatra, int, model.Planet) {
	lon = Normalize(lon)
	idx := int(math.Floor(lon / NakshatraSpan))
	if idx >= model.NakshatraCount {
		idx = model.NakshatraCount - 1
	}
	into := lon - float64(idx)*NakshatraSpan
	pada := int(math.Floor(into/PadaSpan)) + 1
	if pada > 4 {
		pada = 4
	}
	if pada < 1 {
		pada = 1
	}
	return model.Nakshatra(idx), pada, NakshatraLord(model.Nakshatra(idx))
}

// NakshatraLord returns the ruler of a mansion.
func NakshatraLord(n model.Nakshatra) model.Planet {
	i := int(n) % len(NakshatraLords)
	if i < 0 {
		i += len(NakshatraLords)
	}
	return NakshatraLords[i]
}

// NakshatraStart returns the sidereal longitude where the mansion begins.
func NakshatraStart(n model.Nakshatra) float64 {
	return float64(n) * NakshatraSpan
}

var (
	// spelling variants seen from upstream providers that survive key folding
	nakshatraAliases = map[string]model.Nakshatra{
		"kritika":     2,
		"mrgasira":    4,
		"arudra":      5,
		"tiruvatirai": 5,
		"pusyami":     7,
		"pusam":       7,
		"aslesa":      8,
		"svati":       14,
		"visaka":      15,
		"anurada":     16,
		"jyesa":       17,
		"mulam":       18,
		"sravanam":    21,
		"tiruvonam":   21,
		"danista":     22,
		"avittam":     22,
		"satabisak":   23,
		"satabisam":   23,
		"sadayam":     23,
		"purvabadra":  24,
		"uttarabadra": 25,
	}
	nakshatraKeys = func() map[string]model.Nakshatra {
		m := make(map[string]model.Nakshatra, model.NakshatraCount+len(nakshatraAliases))
		for i, name := range model.NakshatraNames() {
			m[nakshatraKey(name)] = model.Nakshatra(i)
		}
		for k, v := range nakshatraAliases {
			m[k] = v
		}
		return m
	}()
)

var keyReplacer = strings.NewReplacer(
	"aa", "a", "ee", "i", "oo", "u",
	"sh", "s", "th", "t", "dh", "d", "bh", "b", "ph", "p", "ch", "c", "w", "v",
)

// nakshatraKey folds case, drops everything but letters and flattens common
// transliteration variants so "Poorva Bhadrapada" and "purva_bhadrapada" match.
func nakshatraKey(name string) string {
	// Casers keep state, so each call gets its own.
	name = cases.Fold().String(name)
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return keyReplacer.Replace(b.String())
}

// NakshatraByName resolves a mansion from loosely spelled text.
func NakshatraByName(name string) (model.Nakshatra, bool) {
	n, ok := nakshatraKeys[nakshatraKey(name)]
	return n, ok
}
