package domain

// Categories returns the distinct categories in first-occurrence order.
func Categories(businesses []Business) []string {
	return distinct(len(businesses), func(yield func(string)) {
		for _, b := range businesses {
			yield(b.Category)
		}
	})
}

// Services returns every distinct service across businesses in first-occurrence order.
func Services(businesses []Business) []string {
	return distinct(len(businesses), func(yield func(string)) {
		for _, b := range businesses {
			for _, s := range b.Services {
				yield(s)
			}
		}
	})
}

// PriceRange is the observed weekly price span of a business list.
type PriceRange struct {
	Min int
	Max int
}

// PriceBounds reports the lowest and highest price. An empty list yields the zero range.
func PriceBounds(businesses []Business) PriceRange {
	if len(businesses) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: businesses[0].Price, Max: businesses[0].Price}
	for _, b := range businesses[1:] {
		if b.Price < r.Min {
			r.Min = b.Price
		}
		if b.Price > r.Max {
			r.Max = b.Price
		}
	}
	return r
}

func distinct(capacity int, walk func(yield func(string))) []string {
	seen := make(map[string]struct{}, capacity)
	values := make([]string, 0, capacity)
	walk(func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	})
	return values
}
