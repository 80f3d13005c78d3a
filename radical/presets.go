package radical

// WuXing returns the Five Elements set 金木水火土 (metal, wood, water,
// fire, earth), the closed alphabet of the composition index in chardb.
// A fresh Set is returned on every call.
func WuXing() *Set {
	s, err := NewSetFromString("五行", "金木水火土")
	if err != nil {
		// The preset is a constant; failing to validate it is a
		// programmer error, not user input.
		panic(err)
	}

	return s
}
