package collector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"Jyotish/internal/model"
)

// ErrBadPayload is returned when a response body is not a position list.
var ErrBadPayload = errors.New("malformed positions payload")

var ascendantAliases = map[string]bool{
	"ascendant": true,
	"asc":       true,
	"lagna":     true,
}

// ParsePositions decodes a provider response. The list may be the top-level array or
// sit under "positions" or "output". Degrees may be numbers or numeric strings; anything
// else decodes as NaN so chart validation reports it. Retrograde flags may be booleans
// or strings such as "true", "yes" or "R".
func ParsePositions(body []byte) ([]model.ExternalPosition, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrBadPayload)
	}
	list := gjson.ParseBytes(body)
	for _, key := range []string{"positions", "output"} {
		if list.IsArray() {
			break
		}
		list = gjson.GetBytes(body, key)
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: no position array", ErrBadPayload)
	}

	items := list.Array()
	out := make([]model.ExternalPosition, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(first(item, "name", "planet").String())
		if ascendantAliases[strings.ToLower(name)] {
			name = model.AscendantName
		}
		pos := model.ExternalPosition{
			Name:       name,
			FullDegree: degree(first(item, "fullDegree", "full_degree", "longitude")),
			Sign:       first(item, "sign", "rasi").String(),
			House:      integer(first(item, "house", "house_number")),
			Retrograde: retrograde(first(item, "isRetro", "is_retro", "retrograde")),
		}
		nak := item.Get("nakshatra")
		if nak.IsObject() {
			pos.Nakshatra = nak.Get("name").String()
			pos.Pada = integer(nak.Get("pada"))
		} else {
			pos.Nakshatra = nak.String()
			pos.Pada = integer(first(item, "pada", "nakshatra_pada"))
		}
		out = append(out, pos)
	}
	return out, nil
}

func first(item gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if r := item.Get(k); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

func degree(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Float()
	case gjson.String:
		if v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			return v
		}
	}
	return math.NaN()
}

func integer(r gjson.Result) int {
	switch r.Type {
	case gjson.Number:
		return int(r.Int())
	case gjson.String:
		if v, err := strconv.Atoi(strings.TrimSpace(r.Str)); err == nil {
			return v
		}
	}
	return 0
}

func retrograde(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(r.Str)) {
		case "true", "yes", "y", "r", "retro", "retrograde", "1":
			return true
		}
	case gjson.Number:
		return r.Int() != 0
	}
	return false
}
