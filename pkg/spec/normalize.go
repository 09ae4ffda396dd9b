package spec

import (
	"math"
	"strconv"
)

// Alias sets for dimension keys. Resolution happens exactly once, here; the
// rest of the module only ever sees canonical names.
var (
	widthAliases     = []string{"width", "w"}
	lengthAliases    = []string{"length", "depth", "l", "d"}
	heightAliases    = []string{"height", "h"}
	thicknessAliases = []string{"thickness", "t"}
	radiusAliases    = []string{"radius", "r"}
)

// Normalize validates a raw spec and returns its canonical metric form.
// All violations are collected and returned together in a *ValidationError;
// normalization is pure and performs no I/O.
func Normalize(raw *RawSpec, limits Limits) (*NormalizedSpec, error) {
	var errs []error

	scale := 1.0
	switch raw.Units {
	case "", "m", "meters", "metric":
		// already meters
	case "ft", "feet":
		scale = FeetToMeters
	default:
		errs = append(errs, &InvalidDimensionError{Key: "units", Value: raw.Units})
	}

	if raw.DesignType == "" {
		errs = append(errs, &MissingKeyError{Key: "design_type"})
	}

	width := requireDimension(raw.Dimensions, "width", widthAliases, scale, limits, &errs)
	length := requireDimension(raw.Dimensions, "length", lengthAliases, scale, limits, &errs)
	height := requireDimension(raw.Dimensions, "height", heightAliases, scale, limits, &errs)

	stories := 1
	storiesField := raw.Stories
	if storiesField == nil {
		storiesField = raw.Floors
	}
	if storiesField != nil {
		switch {
		case *storiesField < 1:
			errs = append(errs, &InvalidDimensionError{Key: "stories", Value: *storiesField})
		case *storiesField > limits.MaxStories:
			errs = append(errs, &DimensionOutOfBoundsError{
				Key:   "stories",
				Value: float64(*storiesField),
				Max:   float64(limits.MaxStories),
			})
		default:
			stories = *storiesField
		}
	}

	objects := normalizeObjects(raw.Objects, scale, &errs)

	if len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}

	return &NormalizedSpec{
		DesignType:    raw.DesignType,
		Width:         width,
		Length:        length,
		Height:        height,
		Stories:       stories,
		UnitsOriginal: raw.Units,
		Objects:       objects,
	}, nil
}

// requireDimension resolves a required dimension through its aliases,
// validates it, and converts it to meters. Violations are appended to errs
// and 0 is returned so validation can continue.
func requireDimension(dims map[string]any, canonical string, aliases []string, scale float64, limits Limits, errs *[]error) float64 {
	value, found := lookupAlias(dims, aliases)
	if !found {
		*errs = append(*errs, &MissingKeyError{Key: canonical})
		return 0
	}

	num, ok := asNumber(value)
	if !ok || num <= 0 {
		*errs = append(*errs, &InvalidDimensionError{Key: canonical, Value: value})
		return 0
	}

	num *= scale
	if num > limits.MaxDimension {
		*errs = append(*errs, &DimensionOutOfBoundsError{Key: canonical, Value: num, Max: limits.MaxDimension})
		return 0
	}

	return num
}

// optionalDimension resolves an optional per-object dimension. Absent keys
// are fine and yield 0; present but invalid values are violations.
func optionalDimension(dims map[string]any, key string, aliases []string, scale float64, errs *[]error) float64 {
	value, found := lookupAlias(dims, aliases)
	if !found {
		return 0
	}

	num, ok := asNumber(value)
	if !ok || num <= 0 {
		*errs = append(*errs, &InvalidDimensionError{Key: key, Value: value})
		return 0
	}

	return num * scale
}

func normalizeObjects(raws []RawObject, scale float64, errs *[]error) []Object {
	if len(raws) == 0 {
		return nil
	}

	objects := make([]Object, 0, len(raws))
	for i, raw := range raws {
		obj := Object{
			ID:      raw.ID,
			Type:    raw.Type,
			Subtype: raw.Subtype,
			Count:   1,
		}

		if raw.Count != nil {
			if *raw.Count < 0 {
				*errs = append(*errs, &InvalidDimensionError{
					Key:   objKey(i, "count"),
					Value: *raw.Count,
				})
			} else {
				obj.Count = *raw.Count
			}
		}

		obj.Width = optionalDimension(raw.Dimensions, objKey(i, "width"), widthAliases, scale, errs)
		obj.Length = optionalDimension(raw.Dimensions, objKey(i, "length"), lengthAliases, scale, errs)
		obj.Height = optionalDimension(raw.Dimensions, objKey(i, "height"), heightAliases, scale, errs)
		obj.Thickness = optionalDimension(raw.Dimensions, objKey(i, "thickness"), thicknessAliases, scale, errs)
		obj.Radius = optionalDimension(raw.Dimensions, objKey(i, "radius"), radiusAliases, scale, errs)

		if v, found := raw.Dimensions["steps"]; found {
			if num, ok := asNumber(v); ok && num >= 1 {
				obj.Steps = int(num)
			} else {
				*errs = append(*errs, &InvalidDimensionError{Key: objKey(i, "steps"), Value: v})
			}
		}

		objects = append(objects, obj)
	}

	return objects
}

func objKey(index int, field string) string {
	return "objects[" + strconv.Itoa(index) + "]." + field
}

// lookupAlias returns the first alias present in the map. The canonical name
// is always first in the alias list, so it wins when several are supplied.
func lookupAlias(dims map[string]any, aliases []string) (any, bool) {
	for _, alias := range aliases {
		if v, found := dims[alias]; found {
			return v, true
		}
	}
	return nil, false
}

// asNumber coerces a decoded JSON value to float64. Only real finite numbers
// qualify; null, strings, and booleans do not.
func asNumber(v any) (float64, bool) {
	var num float64
	switch n := v.(type) {
	case float64:
		num = n
	case float32:
		num = float64(n)
	case int:
		num = float64(n)
	case int64:
		num = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}
