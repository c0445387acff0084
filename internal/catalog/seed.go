package catalog

func intPtr(v int) *int { return &v }

// SeedProperties returns the fixture catalog. It is the only source of
// records in this deployment; the list is loaded once at startup and treated
// as read-only for the process lifetime.
func SeedProperties() []Property {
	return []Property{
		{
			ID:          "1",
			Title:       "Modern Luxury Villa",
			Address:     "123 Oceanview Drive, Malibu, CA",
			Price:       4750000,
			Bedrooms:    5,
			Bathrooms:   4.5,
			SquareFeet:  4200,
			CarpetArea:  3800,
			Balconies:   intPtr(3),
			Furnishing:  "Furnished",
			Description: "Stunning modern villa with panoramic ocean views. This architectural masterpiece features floor-to-ceiling windows, an infinity pool, and a gourmet kitchen with top-of-the-line appliances.",
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?q=80&w=2075&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?q=80&w=2053&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?q=80&w=2070&auto=format&fit=crop",
			},
			Type:     TypeHouse,
			Status:   StatusForSale,
			Featured: true,
			Agent: Agent{
				Name:  "Jennifer Lopez",
				Phone: "310-555-1234",
				Email: "jennifer@realestate.com",
				Image: "https://images.unsplash.com/photo-1594744803329-e58b31de8bf5?q=80&w=774&auto=format&fit=crop",
			},
			Amenities: []string{"Pool", "Ocean View", "Home Theater", "Smart Home", "Wine Cellar", "Spa"},
			YearBuilt: 2021,
		},
		{
			ID:          "2",
			Title:       "Urban Loft Apartment",
			Address:     "456 Downtown Blvd, San Francisco, CA",
			Price:       1250000,
			Bedrooms:    2,
			Bathrooms:   2,
			SquareFeet:  1800,
			CarpetArea:  1500,
			Balconies:   intPtr(1),
			Furnishing:  "Semi-Furnished",
			Description: "Chic urban loft with exposed brick walls and industrial-inspired design. Features soaring ceilings, gourmet kitchen, and a private rooftop terrace with city views.",
			Images: []string{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?q=80&w=1980&auto=format&fit=crop",
			},
			Type:     TypeApartment,
			Status:   StatusForSale,
			Featured: true,
			Agent: Agent{
				Name:  "Michael Chen",
				Phone: "415-555-6789",
				Email: "michael@realestate.com",
				Image: "https://images.unsplash.com/photo-1560250097-0b93528c311a?q=80&w=774&auto=format&fit=crop",
			},
			Amenities: []string{"Rooftop Terrace", "City Views", "Concierge", "Fitness Center", "Pet Friendly"},
			YearBuilt: 2018,
		},
		{
			ID:          "3",
			Title:       "Suburban Family Home",
			Address:     "789 Maple Street, Pasadena, CA",
			Price:       1850000,
			Bedrooms:    4,
			Bathrooms:   3,
			SquareFeet:  2800,
			CarpetArea:  2400,
			Balconies:   intPtr(2),
			Furnishing:  "Unfurnished",
			Description: "Beautiful family home in a tree-lined neighborhood. Features an open concept kitchen and living area, backyard with pool, and a two-car garage.",
			Images: []string{
				"https://images.unsplash.com/photo-1570129477492-45c003edd2be?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600210492493-0946911123ea?q=80&w=2074&auto=format&fit=crop",
			},
			Type:     TypeHouse,
			Status:   StatusForRent,
			Featured: false,
			Agent: Agent{
				Name:  "Sarah Johnson",
				Phone: "626-555-4321",
				Email: "sarah@realestate.com",
				Image: "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=761&auto=format&fit=crop",
			},
			Amenities: []string{"Pool", "Garden", "Two-Car Garage", "Home Office", "Air Conditioning"},
			YearBuilt: 2015,
		},
		{
			ID:          "4",
			Title:       "Waterfront Condo",
			Address:     "101 Harbor Drive, Newport Beach, CA",
			Price:       2250000,
			Bedrooms:    3,
			Bathrooms:   2.5,
			SquareFeet:  2200,
			CarpetArea:  1900,
			Balconies:   intPtr(1),
			Furnishing:  "Furnished",
			Description: "Luxurious waterfront condo with private boat slip. Enjoy stunning marina views from the spacious balcony and take advantage of resort-style amenities.",
			Images: []string{
				"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1549517045-bc93de075e53?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600210491892-03d54c0aaf87?q=80&w=1974&auto=format&fit=crop",
			},
			Type:     TypeCondo,
			Status:   StatusForSale,
			Featured: true,
			Agent: Agent{
				Name:  "Robert Smith",
				Phone: "949-555-8765",
				Email: "robert@realestate.com",
				Image: "https://images.unsplash.com/photo-1566492031773-4f4e44671857?q=80&w=774&auto=format&fit=crop",
			},
			Amenities: []string{"Boat Slip", "Ocean View", "Pool", "Gym", "Sauna", "24/7 Security"},
			YearBuilt: 2019,
		},
		{
			ID:          "5",
			Title:       "Mountain Retreat",
			Address:     "555 Summit Road, Big Bear, CA",
			Price:       975000,
			Bedrooms:    3,
			Bathrooms:   2,
			SquareFeet:  1950,
			CarpetArea:  1700,
			Description: "Cozy mountain retreat with stunning forest views. Features vaulted ceilings, stone fireplace, and wraparound deck perfect for enjoying the natural surroundings.",
			Images: []string{
				"https://images.unsplash.com/photo-1542977390-b4914697625a?q=80&w=2073&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1523217582562-09d0def993a6?q=80&w=1780&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1560185009-5bf9f2849488?q=80&w=2070&auto=format&fit=crop",
			},
			Type:     TypeHouse,
			Status:   StatusPending,
			Featured: false,
			Agent: Agent{
				Name:  "Emma Wilson",
				Phone: "909-555-2345",
				Email: "emma@realestate.com",
				Image: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=776&auto=format&fit=crop",
			},
			Amenities: []string{"Fireplace", "Mountain View", "Deck", "Hot Tub", "Hiking Trails"},
			YearBuilt: 2010,
		},
		{
			ID:          "6",
			Title:       "Historic Brownstone",
			Address:     "222 Heritage Lane, Boston, MA",
			Price:       3100000,
			Bedrooms:    4,
			Bathrooms:   3.5,
			SquareFeet:  3200,
			CarpetArea:  2800,
			Description: "Beautifully renovated brownstone in a historic district. Features original details blended with modern amenities, a gourmet kitchen, and a landscaped garden.",
			Images: []string{
				"https://images.unsplash.com/photo-1600585154526-990dced4db0d?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600566752355-35792bedcfea?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?q=80&w=1974&auto=format&fit=crop",
			},
			Type:     TypeTownhouse,
			Status:   StatusForSale,
			Featured: false,
			Agent: Agent{
				Name:  "James Taylor",
				Phone: "617-555-9876",
				Email: "james@realestate.com",
				Image: "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?q=80&w=774&auto=format&fit=crop",
			},
			Amenities: []string{"Historic Details", "Garden", "Wine Cellar", "Library", "Smart Home"},
			YearBuilt: 1890,
		},
	}
}
