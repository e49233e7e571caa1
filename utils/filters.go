package utils

import (
	"sort"
	"strings"

	"github.com/gehnabazaar/gehnabazaar-api/models"
)

// Pure filter, search and sort helpers over store and design collections.
// Every function treats an empty filter value as identity, returns without
// error, and never mutates its input slice.

// SearchStores returns stores whose name, city, pincode or address contains
// the query, case-insensitively. An empty query returns the input unchanged.
func SearchStores(stores []models.Store, query string) []models.Store {
	if query == "" {
		return stores
	}

	q := strings.ToLower(query)
	results := []models.Store{}
	for _, s := range stores {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.City), q) ||
			strings.Contains(strings.ToLower(s.Pincode), q) ||
			strings.Contains(strings.ToLower(s.Address), q) {
			results = append(results, s)
		}
	}
	return results
}

// FilterStoresByCity returns stores whose city matches, case-insensitively.
func FilterStoresByCity(stores []models.Store, city string) []models.Store {
	if city == "" {
		return stores
	}

	results := []models.Store{}
	for _, s := range stores {
		if strings.EqualFold(s.City, city) {
			results = append(results, s)
		}
	}
	return results
}

// FilterStoresByPincode returns stores with an exact pincode match.
func FilterStoresByPincode(stores []models.Store, pincode string) []models.Store {
	if pincode == "" {
		return stores
	}

	results := []models.Store{}
	for _, s := range stores {
		if s.Pincode == pincode {
			results = append(results, s)
		}
	}
	return results
}

// FilterStoresByStatus returns stores with an exact status match.
func FilterStoresByStatus(stores []models.Store, status string) []models.Store {
	if status == "" {
		return stores
	}

	results := []models.Store{}
	for _, s := range stores {
		if s.Status == status {
			results = append(results, s)
		}
	}
	return results
}

// SortStoresByRating sorts a copy of stores by rating, stable. The default
// order is descending so the highest-rated stores come first.
func SortStoresByRating(stores []models.Store, ascending bool) []models.Store {
	sorted := append([]models.Store{}, stores...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Rating < sorted[j].Rating
		}
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted
}

// GetUniqueCities returns the distinct cities in first-occurrence order.
func GetUniqueCities(stores []models.Store) []string {
	seen := make(map[string]bool)
	cities := []string{}
	for _, s := range stores {
		if !seen[s.City] {
			seen[s.City] = true
			cities = append(cities, s.City)
		}
	}
	return cities
}

// GetUniquePincodes returns the distinct pincodes in first-occurrence order.
func GetUniquePincodes(stores []models.Store) []string {
	seen := make(map[string]bool)
	pincodes := []string{}
	for _, s := range stores {
		if !seen[s.Pincode] {
			seen[s.Pincode] = true
			pincodes = append(pincodes, s.Pincode)
		}
	}
	return pincodes
}

// SearchDesigns returns designs whose name, category or description contains
// the query, case-insensitively. An empty query returns the input unchanged.
func SearchDesigns(designs []models.Design, query string) []models.Design {
	if query == "" {
		return designs
	}

	q := strings.ToLower(query)
	results := []models.Design{}
	for _, d := range designs {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Category), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			results = append(results, d)
		}
	}
	return results
}

// FilterDesignsByStore returns designs belonging to the given store.
func FilterDesignsByStore(designs []models.Design, storeID string) []models.Design {
	if storeID == "" {
		return designs
	}

	results := []models.Design{}
	for _, d := range designs {
		if d.StoreID == storeID {
			results = append(results, d)
		}
	}
	return results
}

// FilterDesignsByCategory returns designs in the given category,
// case-insensitively.
func FilterDesignsByCategory(designs []models.Design, category string) []models.Design {
	if category == "" {
		return designs
	}

	results := []models.Design{}
	for _, d := range designs {
		if strings.EqualFold(d.Category, category) {
			results = append(results, d)
		}
	}
	return results
}

// FilterDesignsByAvailability returns designs with an exact availability match.
func FilterDesignsByAvailability(designs []models.Design, availability string) []models.Design {
	if availability == "" {
		return designs
	}

	results := []models.Design{}
	for _, d := range designs {
		if d.Availability == availability {
			results = append(results, d)
		}
	}
	return results
}

// SortDesignsByPrice sorts a copy of designs by price, stable. The default
// order is ascending so the cheapest designs come first.
func SortDesignsByPrice(designs []models.Design, descending bool) []models.Design {
	sorted := append([]models.Design{}, designs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Price > sorted[j].Price
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}
