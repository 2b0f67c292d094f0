package yoga

import "Jyotish/internal/model"

// signLords maps each sign to its ruling planet.
var signLords = [12]model.Planet{
	model.Mars,    // Aries
	model.Venus,   // Taurus
	model.Mercury, // Gemini
	model.Moon,    // Cancer
	model.Sun,     // Leo
	model.Mercury, // Virgo
	model.Venus,   // Libra
	model.Mars,    // Scorpio
	model.Jupiter, // Sagittarius
	model.Saturn,  // Capricorn
	model.Saturn,  // Aquarius
	model.Jupiter, // Pisces
}

// exaltation is the sign of highest dignity per planet. Debilitation is the opposite sign.
var exaltation = map[model.Planet]model.Sign{
	model.Sun:     model.Aries,
	model.Moon:    model.Taurus,
	model.Mars:    model.Capricorn,
	model.Mercury: model.Virgo,
	model.Jupiter: model.Cancer,
	model.Venus:   model.Pisces,
	model.Saturn:  model.Libra,
	model.Rahu:    model.Taurus,
	model.Ketu:    model.Scorpio,
}

var ownSigns = map[model.Planet][]model.Sign{
	model.Sun:     {model.Leo},
	model.Moon:    {model.Cancer},
	model.Mars:    {model.Aries, model.Scorpio},
	model.Mercury: {model.Gemini, model.Virgo},
	model.Jupiter: {model.Sagittarius, model.Pisces},
	model.Venus:   {model.Taurus, model.Libra},
	model.Saturn:  {model.Capricorn, model.Aquarius},
}

// LordOf returns the ruler of a sign.
func LordOf(s model.Sign) model.Planet { return signLords[((int(s)%12)+12)%12] }

// IsOwnSign reports whether s is ruled by p.
func IsOwnSign(p model.Planet, s model.Sign) bool {
	for _, o := range ownSigns[p] {
		if o == s {
			return true
		}
	}
	return false
}

// IsExalted reports whether p is in its sign of exaltation.
func IsExalted(p model.Planet, s model.Sign) bool {
	e, ok := exaltation[p]
	return ok && e == s
}

// DebilitationSign returns the sign where p is weakest.
func DebilitationSign(p model.Planet) (model.Sign, bool) {
	e, ok := exaltation[p]
	if !ok {
		return 0, false
	}
	return e.Add(6), true
}

// IsDebilitated reports whether p is in its sign of debilitation.
func IsDebilitated(p model.Planet, s model.Sign) bool {
	d, ok := DebilitationSign(p)
	return ok && d == s
}

type houseSet [13]bool

func newHouseSet(houses ...int) houseSet {
	var hs houseSet
	for _, h := range houses {
		hs[h] = true
	}
	return hs
}

func (hs houseSet) Has(h int) bool { return h >= 1 && h <= 12 && hs[h] }

var (
	quadrants = newHouseSet(1, 4, 7, 10)
	trines    = newHouseSet(1, 5, 9)
	upachayas = newHouseSet(3, 6, 10, 11)
	dusthanas = newHouseSet(6, 8, 12)
)

// IsQuadrant reports whether h is a kendra (1, 4, 7, 10).
func IsQuadrant(h int) bool { return quadrants.Has(h) }

// IsTrine reports whether h is a trikona (1, 5, 9).
func IsTrine(h int) bool { return trines.Has(h) }

// IsUpachaya reports whether h is a house of growth (3, 6, 10, 11).
func IsUpachaya(h int) bool { return upachayas.Has(h) }

// IsDusthana reports whether h is a house of difficulty (6, 8, 12).
func IsDusthana(h int) bool { return dusthanas.Has(h) }

var benefics = map[model.Planet]bool{
	model.Jupiter: true,
	model.Venus:   true,
	model.Mercury: true,
	model.Moon:    true,
}

// IsBenefic reports natural benefic status.
func IsBenefic(p model.Planet) bool { return benefics[p] }

// IsMalefic reports natural malefic status.
func IsMalefic(p model.Planet) bool { return !benefics[p] }

// classical is the seven visible planets used by the sign-pattern yogas.
var classical = []model.Planet{model.Sun, model.Moon, model.Mars, model.Mercury, model.Jupiter, model.Venus, model.Saturn}
