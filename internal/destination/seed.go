package destination

// SampleDestinations returns the shipped dataset.
// Each call builds fresh values so callers may modify the result.
func SampleDestinations() []Destination {
	return []Destination{
		ooty(),
		jaipur(),
		goa(),
	}
}

func ooty() Destination {
	return Destination{
		ID:          "ooty",
		Name:        "Ooty",
		State:       "Tamil Nadu",
		Description: "Nestled in the Nilgiri Hills, Ooty (also known as Udagamandalam) is a popular hill station in Tamil Nadu. Known for its tea gardens, rolling hills, and pleasant climate, Ooty offers a refreshing retreat from the heat of the plains.",
		Image:       "https://images.unsplash.com/photo-1585136917228-a4dfcacb29f2?q=80&w=1000",
		Attractions: []Attraction{
			{
				ID:              "botanical-gardens",
				Name:            "Botanical Gardens",
				Description:     "Spread over 55 acres, the Government Botanical Gardens houses a variety of plants, including exotic and rare species. The garden also features a fossilized tree trunk estimated to be 20 million years old.",
				Image:           "https://images.unsplash.com/photo-1544212575-6e248e63ec31?q=80&w=1000",
				EntryFee:        50,
				OpeningHours:    "8:00 AM - 6:30 PM",
				BestTimeToVisit: "Morning",
				Location:        "Udagamandalam, Tamil Nadu",
				Rating:          4.5,
			},
			{
				ID:              "ooty-lake",
				Name:            "Ooty Lake",
				Description:     "Created in 1824, Ooty Lake is an artificial lake that offers boating facilities. Surrounded by eucalyptus trees and beautiful landscapes, it's a popular spot for tourists and locals alike.",
				Image:           "https://images.unsplash.com/photo-1595815771614-ade1576442d8?q=80&w=1000",
				EntryFee:        30,
				OpeningHours:    "9:00 AM - 6:00 PM",
				BestTimeToVisit: "Evening",
				Location:        "North Lake Road, Udagamandalam",
				Rating:          4.2,
			},
			{
				ID:              "nilgiri-mountain-railway",
				Name:            "Nilgiri Mountain Railway",
				Description:     "A UNESCO World Heritage Site, this railway offers a scenic journey through hills, tunnels, and bridges. The train runs from Mettupalayam to Ooty, providing breathtaking views of the Nilgiri Hills.",
				Image:           "https://images.unsplash.com/photo-1565014904929-09c274a28170?q=80&w=1000",
				EntryFee:        200,
				OpeningHours:    "Varies based on schedule",
				BestTimeToVisit: "Morning departure",
				Location:        "Ooty Railway Station",
				Rating:          4.8,
			},
		},
		TransportOptions: []TransportOption{
			{
				Type:      "bus",
				From:      "Bangalore",
				To:        "Ooty",
				Duration:  "8 hours",
				Cost:      600,
				Frequency: "Multiple departures daily",
				Operators: []string{"KSRTC", "TNSTC", "Private operators"},
			},
			{
				Type:      "train",
				From:      "Mettupalayam",
				To:        "Ooty",
				Duration:  "4-5 hours",
				Cost:      200,
				Frequency: "One departure daily",
				Operators: []string{"Nilgiri Mountain Railway"},
			},
			{
				Type:      "flight",
				From:      "Chennai",
				To:        "Coimbatore",
				Duration:  "1 hour + 3 hours by road",
				Cost:      5000,
				Frequency: "Multiple flights daily",
				Operators: []string{"IndiGo", "Air India", "SpiceJet"},
			},
		},
		Accommodations: []Accommodation{
			{
				ID:            "savoy",
				Name:          "The Savoy",
				Type:          "luxury",
				PricePerNight: 7500,
				Rating:        4.7,
				Amenities:     []string{"Restaurant", "Spa", "Room service", "Free Wi-Fi", "Bar"},
				Image:         "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=1000",
				Location:      "Ooty-Coonoor Road",
			},
			{
				ID:            "fortune",
				Name:          "Fortune Resort Sullivan Court",
				Type:          "standard",
				PricePerNight: 4500,
				Rating:        4.3,
				Amenities:     []string{"Restaurant", "Room service", "Free parking", "Wi-Fi"},
				Image:         "https://images.unsplash.com/photo-1571896349842-33c89424de2d?q=80&w=1000",
				Location:      "Fernhill, Ooty",
			},
			{
				ID:            "hotel-darshan",
				Name:          "Hotel Darshan",
				Type:          "budget",
				PricePerNight: 1500,
				Rating:        3.8,
				Amenities:     []string{"Restaurant", "Room service", "Free Wi-Fi"},
				Image:         "https://images.unsplash.com/photo-1618773928121-c32242e63f39?q=80&w=1000",
				Location:      "Commercial Road, Ooty",
			},
		},
		Weather: Weather{
			Summer:  Season{Temperature: "12°C - 25°C", Conditions: "Pleasant with occasional rainfall"},
			Winter:  Season{Temperature: "5°C - 18°C", Conditions: "Cold and foggy"},
			Monsoon: Season{Temperature: "10°C - 20°C", Conditions: "Heavy rainfall"},
		},
		BestTimeToVisit: "April to June and September to November",
		AverageBudget:   AverageBudget{Budget: 2000, Standard: 4000, Luxury: 8000},
	}
}

func jaipur() Destination {
	return Destination{
		ID:          "jaipur",
		Name:        "Jaipur",
		State:       "Rajasthan",
		Description: "Known as the Pink City, Jaipur is the capital of Rajasthan. Famous for its vibrant culture, grand palaces, and historic forts, Jaipur forms an important part of the Golden Triangle tourist circuit along with Delhi and Agra.",
		Image:       "https://images.unsplash.com/photo-1477587458883-47145ed94245?q=80&w=1000",
		Attractions: []Attraction{
			{
				ID:              "amber-fort",
				Name:            "Amber Fort",
				Description:     "A majestic fort overlooking Maota Lake, known for its artistic style elements. The fort is built with red sandstone and marble and is laid out on four levels, each with a courtyard.",
				Image:           "https://images.unsplash.com/photo-1599661046289-e3ec1a230c0c?q=80&w=1000",
				EntryFee:        200,
				OpeningHours:    "8:00 AM - 5:30 PM",
				BestTimeToVisit: "Early morning",
				Location:        "Devisinghpura, Amer, Jaipur",
				Rating:          4.7,
			},
			{
				ID:              "hawa-mahal",
				Name:            "Hawa Mahal",
				Description:     "A palace built with red and pink sandstone, known for its unique five-story exterior with 953 small windows called jharokhas decorated with intricate latticework.",
				Image:           "https://images.unsplash.com/photo-1549880338-65ddcdfd017b?q=80&w=1000",
				EntryFee:        50,
				OpeningHours:    "9:00 AM - 4:30 PM",
				BestTimeToVisit: "Morning for best photographs",
				Location:        "Hawa Mahal Rd, Badi Choupad, Jaipur",
				Rating:          4.5,
			},
			{
				ID:              "city-palace",
				Name:            "City Palace",
				Description:     "A palace complex with courtyards, gardens, and buildings. It now houses a museum with a collection of royal costumes, weapons, and art.",
				Image:           "https://images.unsplash.com/photo-1506874005505-b98bf26eb8a1?q=80&w=1000",
				EntryFee:        500,
				OpeningHours:    "9:30 AM - 5:00 PM",
				BestTimeToVisit: "Afternoon",
				Location:        "Tulsi Marg, Gangori Bazaar, Jaipur",
				Rating:          4.6,
			},
		},
		TransportOptions: []TransportOption{
			{
				Type:      "flight",
				From:      "Delhi",
				To:        "Jaipur",
				Duration:  "1 hour",
				Cost:      4000,
				Frequency: "Multiple flights daily",
				Operators: []string{"IndiGo", "Air India", "SpiceJet"},
			},
			{
				Type:      "train",
				From:      "Delhi",
				To:        "Jaipur",
				Duration:  "4-5 hours",
				Cost:      500,
				Frequency: "Multiple departures daily",
				Operators: []string{"Indian Railways"},
			},
			{
				Type:      "bus",
				From:      "Delhi",
				To:        "Jaipur",
				Duration:  "6 hours",
				Cost:      400,
				Frequency: "Multiple departures daily",
				Operators: []string{"RSRTC", "Private operators"},
			},
		},
		Accommodations: []Accommodation{
			{
				ID:            "rambagh-palace",
				Name:          "Rambagh Palace",
				Type:          "luxury",
				PricePerNight: 20000,
				Rating:        4.9,
				Amenities:     []string{"Restaurant", "Spa", "Pool", "Room service", "Free Wi-Fi", "Bar"},
				Image:         "https://images.unsplash.com/photo-1582719471384-894fbb16e074?q=80&w=1000",
				Location:      "Bhawani Singh Road, Jaipur",
			},
			{
				ID:            "jai-mahal",
				Name:          "Jai Mahal Palace",
				Type:          "luxury",
				PricePerNight: 15000,
				Rating:        4.8,
				Amenities:     []string{"Restaurant", "Spa", "Pool", "Room service", "Free Wi-Fi", "Bar"},
				Image:         "https://images.unsplash.com/photo-1605713024064-30405a9b1bbc?q=80&w=1000",
				Location:      "Jacob Road, Civil Lines, Jaipur",
			},
			{
				ID:            "zostel",
				Name:          "Zostel Jaipur",
				Type:          "budget",
				PricePerNight: 800,
				Rating:        4.3,
				Amenities:     []string{"Free Wi-Fi", "Common area", "Terrace", "Cafe"},
				Image:         "https://images.unsplash.com/photo-1590856029826-c7a73142bbf1?q=80&w=1000",
				Location:      "Pink Square Mall, Govind Marg, Raja Park, Jaipur",
			},
		},
		Weather: Weather{
			Summer:  Season{Temperature: "25°C - 45°C", Conditions: "Very hot and dry"},
			Winter:  Season{Temperature: "8°C - 25°C", Conditions: "Pleasant and mild"},
			Monsoon: Season{Temperature: "25°C - 35°C", Conditions: "Moderate rainfall"},
		},
		BestTimeToVisit: "October to March",
		AverageBudget:   AverageBudget{Budget: 2500, Standard: 5000, Luxury: 15000},
	}
}

func goa() Destination {
	return Destination{
		ID:          "goa",
		Name:        "Goa",
		State:       "Goa",
		Description: "India's smallest state and one of its most popular tourist destinations, Goa is known for its pristine beaches, vibrant nightlife, and Portuguese-influenced architecture. The state offers a unique blend of Indian and Portuguese cultures.",
		Image:       "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?q=80&w=1000",
		Attractions: []Attraction{
			{
				ID:              "calangute-beach",
				Name:            "Calangute Beach",
				Description:     "Often referred to as the 'Queen of Beaches', Calangute Beach is the largest and most popular beach in North Goa. It offers a range of water sports and is lined with shacks serving fresh seafood and drinks.",
				Image:           "https://images.unsplash.com/photo-1590080875515-8e0e7f5b615f?q=80&w=1000",
				EntryFee:        0,
				OpeningHours:    "24 hours",
				BestTimeToVisit: "Early morning or late afternoon",
				Location:        "Calangute, North Goa",
				Rating:          4.2,
			},
			{
				ID:              "basilica-bom-jesus",
				Name:            "Basilica of Bom Jesus",
				Description:     "A UNESCO World Heritage Site, this basilica contains the mortal remains of St. Francis Xavier and is known for its exemplary baroque architecture.",
				Image:           "https://images.unsplash.com/photo-1629968417850-8e37c7723490?q=80&w=1000",
				EntryFee:        0,
				OpeningHours:    "9:00 AM - 6:30 PM",
				BestTimeToVisit: "Morning",
				Location:        "Old Goa Road, Bainguinim, Goa",
				Rating:          4.6,
			},
			{
				ID:              "dudhsagar-falls",
				Name:            "Dudhsagar Falls",
				Description:     "Located on the Mandovi River, Dudhsagar is one of India's tallest waterfalls. The name 'Dudhsagar' literally translates to 'sea of milk', derived from the white spray and foam the cascading water creates.",
				Image:           "https://images.unsplash.com/photo-1599402185954-d3e2075a883a?q=80&w=1000",
				EntryFee:        400,
				OpeningHours:    "7:00 AM - 5:00 PM",
				BestTimeToVisit: "Post monsoon (September to January)",
				Location:        "Sonaulim, Goa",
				Rating:          4.7,
			},
		},
		TransportOptions: []TransportOption{
			{
				Type:      "flight",
				From:      "Mumbai",
				To:        "Goa",
				Duration:  "1 hour",
				Cost:      4500,
				Frequency: "Multiple flights daily",
				Operators: []string{"IndiGo", "Air India", "SpiceJet"},
			},
			{
				Type:      "train",
				From:      "Mumbai",
				To:        "Goa",
				Duration:  "10-12 hours",
				Cost:      800,
				Frequency: "Multiple departures daily",
				Operators: []string{"Indian Railways"},
			},
			{
				Type:      "bus",
				From:      "Mumbai",
				To:        "Goa",
				Duration:  "12 hours",
				Cost:      1200,
				Frequency: "Multiple departures daily",
				Operators: []string{"MSRTC", "Private operators"},
			},
		},
		Accommodations: []Accommodation{
			{
				ID:            "taj-exotica",
				Name:          "Taj Exotica Resort & Spa",
				Type:          "luxury",
				PricePerNight: 18000,
				Rating:        4.8,
				Amenities:     []string{"Beach access", "Swimming pool", "Spa", "Restaurant", "Bar", "Free Wi-Fi"},
				Image:         "https://images.unsplash.com/photo-1518291344630-4857135fb581?q=80&w=1000",
				Location:      "Benaulim, South Goa",
			},
			{
				ID:            "alila-diwa",
				Name:          "Alila Diwa Goa",
				Type:          "luxury",
				PricePerNight: 12000,
				Rating:        4.7,
				Amenities:     []string{"Swimming pool", "Spa", "Restaurant", "Bar", "Free Wi-Fi"},
				Image:         "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=1000",
				Location:      "Majorda, South Goa",
			},
			{
				ID:            "zostel-goa",
				Name:          "Zostel Goa",
				Type:          "budget",
				PricePerNight: 700,
				Rating:        4.3,
				Amenities:     []string{"Free Wi-Fi", "Common area", "Terrace", "Cafe"},
				Image:         "https://images.unsplash.com/photo-1595877244574-e90ce41ce089?q=80&w=1000",
				Location:      "Calangute, North Goa",
			},
		},
		Weather: Weather{
			Summer:  Season{Temperature: "25°C - 35°C", Conditions: "Hot and humid"},
			Winter:  Season{Temperature: "21°C - 32°C", Conditions: "Pleasant and mild"},
			Monsoon: Season{Temperature: "22°C - 30°C", Conditions: "Heavy rainfall"},
		},
		BestTimeToVisit: "November to February",
		AverageBudget:   AverageBudget{Budget: 3000, Standard: 6000, Luxury: 15000},
	}
}
