// Package catalog holds the static mock product data the storefront
// serves. There is no real product backend; every fetch re-delivers
// this list.
package catalog

import "github.com/MK-1512/gadget-galaxy/models"

// Products returns the seeded catalog. Callers get a fresh slice but
// share the records; products are treated as immutable.
func Products() []models.Product {
	out := make([]models.Product, len(seed))
	copy(out, seed)
	return out
}

var seed = []models.Product{
	{
		ID:          1,
		Title:       "Nebula X1 Pro",
		Brand:       "Nebula",
		Category:    "smartphones",
		Price:       899,
		Stock:       34,
		Rating:      4.6,
		Thumbnail:   "/images/nebula-x1-pro.jpg",
		Description: "6.7-inch OLED flagship with a 50MP triple camera and two-day battery life.",
	},
	{
		ID:          2,
		Title:       "Nebula A24",
		Brand:       "Nebula",
		Category:    "smartphones",
		Price:       329,
		Stock:       120,
		Rating:      4.2,
		Thumbnail:   "/images/nebula-a24.jpg",
		Description: "Mid-range workhorse with a 90Hz display and expandable storage.",
	},
	{
		ID:          3,
		Title:       "Voltair Edge 14",
		Brand:       "Voltair",
		Category:    "laptops",
		Price:       1249,
		Stock:       18,
		Rating:      4.7,
		Thumbnail:   "/images/voltair-edge-14.jpg",
		Description: "14-inch ultrabook, 16GB RAM, 1TB SSD, under 1.2kg.",
	},
	{
		ID:          4,
		Title:       "Voltair Forge 16",
		Brand:       "Voltair",
		Category:    "laptops",
		Price:       1899,
		Stock:       9,
		Rating:      4.5,
		Thumbnail:   "/images/voltair-forge-16.jpg",
		Description: "16-inch creator laptop with a dedicated GPU and 120Hz panel.",
	},
	{
		ID:          5,
		Title:       "Aria Buds 2",
		Brand:       "Aria",
		Category:    "audio",
		Price:       129,
		Stock:       200,
		Rating:      4.3,
		Thumbnail:   "/images/aria-buds-2.jpg",
		Description: "True wireless earbuds with active noise cancellation and 28h total playtime.",
	},
	{
		ID:          6,
		Title:       "Aria Studio Max",
		Brand:       "Aria",
		Category:    "audio",
		Price:       349,
		Stock:       45,
		Rating:      4.8,
		Thumbnail:   "/images/aria-studio-max.jpg",
		Description: "Over-ear studio headphones with adaptive ANC and lossless codec support.",
	},
	{
		ID:          7,
		Title:       "Pulse Band 5",
		Brand:       "Pulse",
		Category:    "wearables",
		Price:       79,
		Stock:       310,
		Rating:      4.0,
		Thumbnail:   "/images/pulse-band-5.jpg",
		Description: "Fitness band with heart-rate, SpO2 and 14-day battery.",
	},
	{
		ID:          8,
		Title:       "Pulse Watch S",
		Brand:       "Pulse",
		Category:    "wearables",
		Price:       249,
		Stock:       67,
		Rating:      4.4,
		Thumbnail:   "/images/pulse-watch-s.jpg",
		Description: "AMOLED smartwatch with GPS, contactless payments and 5ATM water resistance.",
	},
	{
		ID:          9,
		Title:       "Lumen 4K Cast",
		Brand:       "Lumen",
		Category:    "home",
		Price:       59,
		Stock:       150,
		Rating:      4.1,
		Thumbnail:   "/images/lumen-4k-cast.jpg",
		Description: "4K HDR streaming stick with voice remote.",
	},
	{
		ID:          10,
		Title:       "Lumen Hub Mini",
		Brand:       "Lumen",
		Category:    "home",
		Price:       99,
		Stock:       88,
		Rating:      3.9,
		Thumbnail:   "/images/lumen-hub-mini.jpg",
		Description: "Smart-home hub speaker with a 7-inch touch display.",
	},
	{
		ID:          11,
		Title:       "Drift Pad 11",
		Brand:       "Drift",
		Category:    "tablets",
		Price:       549,
		Stock:       41,
		Rating:      4.5,
		Thumbnail:   "/images/drift-pad-11.jpg",
		Description: "11-inch tablet with stylus support and quad speakers.",
	},
	{
		ID:          12,
		Title:       "Drift Pad Mini",
		Brand:       "Drift",
		Category:    "tablets",
		Price:       399,
		Stock:       0,
		Rating:      4.2,
		Thumbnail:   "/images/drift-pad-mini.jpg",
		Description: "8.3-inch compact tablet, currently out of stock.",
	},
}
