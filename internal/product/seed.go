package product

// SeedCatalog returns the built-in jewelry catalog. Prices are in whole
// rupees; oldPrice equals price when an item is not discounted.
func SeedCatalog() []Product {
	return []Product{
		{
			ID:               1,
			Name:             "Celestial Drop Earrings",
			Price:            449,
			OldPrice:         699,
			Category:         "Earrings",
			Material:         "Brass",
			Plating:          "18k Gold",
			Images:           []string{"/products/celestial-drop-1.jpg", "/products/celestial-drop-2.jpg"},
			Description:      "Star-and-moon drop earrings with cubic zirconia accents.",
			CareInstructions: "Keep away from water and perfume. Store in the pouch provided.",
			InStock:          true,
		},
		{
			ID:               2,
			Name:             "Aurora Pendant Necklace",
			Price:            649,
			OldPrice:         899,
			Category:         "Necklaces",
			Material:         "92.5 Silver",
			Plating:          "Rhodium",
			Images:           []string{"/products/aurora-pendant-1.jpg"},
			Description:      "A teardrop pendant on an adjustable 18-inch chain.",
			CareInstructions: "Wipe with a soft dry cloth after each wear.",
			InStock:          true,
		},
		{
			ID:               3,
			Name:             "Heritage Kada Bangle",
			Price:            799,
			OldPrice:         799,
			Category:         "Bangles",
			Material:         "Brass",
			Plating:          "Antique Gold",
			Images:           []string{"/products/heritage-kada-1.jpg", "/products/heritage-kada-2.jpg"},
			Description:      "Temple-work kada with hand-engraved floral motifs.",
			CareInstructions: "Avoid contact with moisture. Store separately to prevent scratches.",
			InStock:          true,
		},
		{
			ID:               4,
			Name:             "Solitaire Halo Ring",
			Price:            549,
			OldPrice:         749,
			Category:         "Rings",
			Material:         "Brass",
			Plating:          "Rose Gold",
			Images:           []string{"/products/solitaire-halo-1.jpg"},
			Description:      "A halo-set solitaire with micro-pavé band.",
			CareInstructions: "Remove before washing hands. Keep away from perfume.",
			InStock:          true,
		},
		{
			ID:               5,
			Name:             "Pearl Cluster Studs",
			Price:            299,
			OldPrice:         449,
			Category:         "Earrings",
			Material:         "Shell Pearl",
			Plating:          "18k Gold",
			Images:           []string{"/products/pearl-cluster-1.jpg"},
			Description:      "Clustered shell-pearl studs for everyday wear.",
			CareInstructions: "Wipe gently; pearls are sensitive to cosmetics.",
			InStock:          true,
		},
		{
			ID:               6,
			Name:             "Regalia Bridal Set",
			Price:            2499,
			OldPrice:         3299,
			Category:         "Sets",
			Material:         "Brass",
			Plating:          "22k Gold",
			Images:           []string{"/products/regalia-set-1.jpg", "/products/regalia-set-2.jpg", "/products/regalia-set-3.jpg"},
			Description:      "Necklace, earrings and maang tikka set with kundan work.",
			CareInstructions: "Store flat in the box provided. Avoid moisture entirely.",
			InStock:          true,
		},
		{
			ID:               7,
			Name:             "Figaro Link Chain",
			Price:            599,
			OldPrice:         599,
			Category:         "Chains",
			Material:         "Stainless Steel",
			Plating:          "Silver",
			Images:           []string{"/products/figaro-chain-1.jpg"},
			Description:      "A 22-inch figaro link chain with lobster clasp.",
			CareInstructions: "Rinse with clean water and pat dry if worn daily.",
			InStock:          true,
		},
		{
			ID:               8,
			Name:             "Minimal Band Ring",
			Price:            199,
			OldPrice:         299,
			Category:         "Rings",
			Material:         "Stainless Steel",
			Plating:          "Rose Gold",
			Images:           []string{"/products/minimal-band-1.jpg"},
			Description:      "A slim stackable band with brushed finish.",
			CareInstructions: "Wipe with a soft dry cloth.",
			InStock:          true,
		},
		{
			ID:               9,
			Name:             "Lotus Charm Bangle",
			Price:            459,
			OldPrice:         649,
			Category:         "Bangles",
			Material:         "Brass",
			Plating:          "18k Gold",
			Images:           []string{"/products/lotus-charm-1.jpg"},
			Description:      "An open-cuff bangle with a dangling lotus charm.",
			CareInstructions: "Keep away from water and perfume.",
			InStock:          false,
		},
		{
			ID:               10,
			Name:             "Emerald Teardrop Necklace",
			Price:            899,
			OldPrice:         1199,
			Category:         "Necklaces",
			Material:         "92.5 Silver",
			Plating:          "Rhodium",
			Images:           []string{"/products/emerald-teardrop-1.jpg", "/products/emerald-teardrop-2.jpg"},
			Description:      "Green crystal teardrop on a fine cable chain.",
			CareInstructions: "Wipe with a soft dry cloth after each wear.",
			InStock:          true,
		},
		{
			ID:               11,
			Name:             "Jhumka Bell Earrings",
			Price:            379,
			OldPrice:         549,
			Category:         "Earrings",
			Material:         "Brass",
			Plating:          "Antique Gold",
			Images:           []string{"/products/jhumka-bell-1.jpg"},
			Description:      "Classic dome jhumkas with pearl drops.",
			CareInstructions: "Store separately to protect the pearl drops.",
			InStock:          true,
		},
		{
			ID:               12,
			Name:             "Infinity Box Chain",
			Price:            349,
			OldPrice:         349,
			Category:         "Chains",
			Material:         "Stainless Steel",
			Plating:          "Silver",
			Images:           []string{"/products/infinity-box-1.jpg"},
			Description:      "A 20-inch box chain that pairs with any pendant.",
			CareInstructions: "Rinse with clean water and pat dry if worn daily.",
			InStock:          true,
		},
	}
}
