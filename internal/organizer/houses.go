// Package organizer places planets into houses for the birth chart and its
// divisional (varga) charts.
package organizer

import "Jyotish/internal/model"

// HouseCount is the number of bhavas in every chart variant.
const HouseCount = 12

// HouseOf returns the whole-sign house (1..12) of a sign counted from the ascendant sign.
func HouseOf(sign, ascSign model.Sign) int {
	return ((int(sign)-int(ascSign)+HouseCount)%HouseCount + 1)
}

// Assign sets each planet's house from its sign and returns the placed copies along
// with the 12 house slots. Input positions are not modified.
func Assign(ascSign model.Sign, planets []model.PlanetPosition) ([]model.PlanetPosition, []model.HouseSlot) {
	slots := emptySlots(ascSign)
	placed := make([]model.PlanetPosition, len(planets))
	for i, p := range planets {
		p.House = HouseOf(p.Sign, ascSign)
		placed[i] = p
		slots[p.House-1].Planets = append(slots[p.House-1].Planets, p)
	}
	return placed, slots
}

// Houses is Assign without the placed copies.
func Houses(ascSign model.Sign, planets []model.PlanetPosition) []model.HouseSlot {
	_, slots := Assign(ascSign, planets)
	return slots
}

// emptySlots pre-seeds the houses with the zodiac rotated to start at the ascendant.
func emptySlots(ascSign model.Sign) []model.HouseSlot {
	slots := make([]model.HouseSlot, HouseCount)
	for i := range slots {
		slots[i] = model.HouseSlot{
			Number:  i + 1,
			Sign:    ascSign.Add(i),
			Planets: []model.PlanetPosition{},
		}
	}
	return slots
}

// SlotOf returns the house slot holding the given planet, or false if it is not placed.
func SlotOf(slots []model.HouseSlot, p model.Planet) (model.HouseSlot, bool) {
	for _, s := range slots {
		for _, pos := range s.Planets {
			if pos.Planet == p {
				return s, true
			}
		}
	}
	return model.HouseSlot{}, false
}
