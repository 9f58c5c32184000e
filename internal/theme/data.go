package theme

// cityTable is the curated destination dataset. Flight times are averages from London.
var cityTable = []City{
	{
		Code: "BCN", Name: "Barcelona", Country: "Spain", CountryCode: "ES",
		Scores:            Scores{Party: 92, Adventure: 70, Culture: 88, Luxury: 75, Relaxation: 68},
		Highlights:        []string{"Gothic Quarter nightlife", "Sagrada Familia", "Barceloneta beach"},
		AverageFlightTime: 2.0,
		PriceTier:         MidRange,
		BestMonths:        []string{"May", "Jun", "Sep", "Oct"},
	},
	{
		Code: "IBZ", Name: "Ibiza", Country: "Spain", CountryCode: "ES",
		Scores:            Scores{Party: 98, Adventure: 55, Culture: 40, Luxury: 80, Relaxation: 72},
		Highlights:        []string{"Superclub season", "Cala Comte sunsets", "Dalt Vila old town"},
		AverageFlightTime: 2.5,
		PriceTier:         MidRange,
		BestMonths:        []string{"Jun", "Jul", "Aug", "Sep"},
	},
	{
		Code: "AMS", Name: "Amsterdam", Country: "Netherlands", CountryCode: "NL",
		Scores:            Scores{Party: 88, Adventure: 45, Culture: 90, Luxury: 65, Relaxation: 55},
		Highlights:        []string{"Canal-side bars", "Rijksmuseum", "Vondelpark cycling"},
		AverageFlightTime: 1.2,
		PriceTier:         MidRange,
		BestMonths:        []string{"Apr", "May", "Sep"},
	},
	{
		Code: "BER", Name: "Berlin", Country: "Germany", CountryCode: "DE",
		Scores:            Scores{Party: 95, Adventure: 50, Culture: 92, Luxury: 55, Relaxation: 45},
		Highlights:        []string{"Techno club scene", "Museum Island", "East Side Gallery"},
		AverageFlightTime: 1.8,
		PriceTier:         Budget,
		BestMonths:        []string{"May", "Jun", "Jul", "Sep"},
	},
	{
		Code: "PRG", Name: "Prague", Country: "Czech Republic", CountryCode: "CZ",
		Scores:            Scores{Party: 85, Adventure: 45, Culture: 88, Luxury: 50, Relaxation: 55},
		Highlights:        []string{"Old Town beer halls", "Charles Bridge", "Prague Castle"},
		AverageFlightTime: 2.0,
		PriceTier:         Budget,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "BUD", Name: "Budapest", Country: "Hungary", CountryCode: "HU",
		Scores:            Scores{Party: 87, Adventure: 50, Culture: 84, Luxury: 60, Relaxation: 70},
		Highlights:        []string{"Ruin bars", "Thermal baths", "Parliament on the Danube"},
		AverageFlightTime: 2.5,
		PriceTier:         Budget,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "KEF", Name: "Reykjavik", Country: "Iceland", CountryCode: "IS",
		Scores:            Scores{Party: 60, Adventure: 95, Culture: 65, Luxury: 55, Relaxation: 90},
		Highlights:        []string{"Glacier hiking", "Golden Circle", "Blue Lagoon"},
		AverageFlightTime: 3.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Jun", "Jul", "Aug", "Sep"},
	},
	{
		Code: "GVA", Name: "Geneva", Country: "Switzerland", CountryCode: "CH",
		Scores:            Scores{Party: 40, Adventure: 88, Culture: 60, Luxury: 90, Relaxation: 80},
		Highlights:        []string{"Alpine skiing nearby", "Lake Geneva", "Jet d'Eau"},
		AverageFlightTime: 1.7,
		PriceTier:         Premium,
		BestMonths:        []string{"Jan", "Feb", "Jul", "Aug"},
	},
	{
		Code: "INN", Name: "Innsbruck", Country: "Austria", CountryCode: "AT",
		Scores:            Scores{Party: 50, Adventure: 94, Culture: 55, Luxury: 60, Relaxation: 78},
		Highlights:        []string{"Nordkette cable car", "Alpine ski slopes", "Golden Roof"},
		AverageFlightTime: 2.0,
		PriceTier:         MidRange,
		BestMonths:        []string{"Jan", "Feb", "Jun", "Jul"},
	},
	{
		Code: "LIS", Name: "Lisbon", Country: "Portugal", CountryCode: "PT",
		Scores:            Scores{Party: 82, Adventure: 68, Culture: 85, Luxury: 62, Relaxation: 72},
		Highlights:        []string{"Bairro Alto nights", "Surfing at Ericeira", "Belem Tower"},
		AverageFlightTime: 2.7,
		PriceTier:         Budget,
		BestMonths:        []string{"Apr", "May", "Jun", "Sep", "Oct"},
	},
	{
		Code: "FAO", Name: "Faro", Country: "Portugal", CountryCode: "PT",
		Scores:            Scores{Party: 55, Adventure: 80, Culture: 45, Luxury: 60, Relaxation: 85},
		Highlights:        []string{"Algarve sea caves", "Coastal cliff walks", "Ria Formosa lagoon"},
		AverageFlightTime: 2.8,
		PriceTier:         MidRange,
		BestMonths:        []string{"May", "Jun", "Sep"},
	},
	{
		Code: "FCO", Name: "Rome", Country: "Italy", CountryCode: "IT",
		Scores:            Scores{Party: 70, Adventure: 45, Culture: 98, Luxury: 78, Relaxation: 60},
		Highlights:        []string{"Colosseum", "Vatican Museums", "Trastevere trattorias"},
		AverageFlightTime: 2.5,
		PriceTier:         MidRange,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "FLR", Name: "Florence", Country: "Italy", CountryCode: "IT",
		Scores:            Scores{Party: 55, Adventure: 40, Culture: 97, Luxury: 80, Relaxation: 65},
		Highlights:        []string{"Uffizi Gallery", "Duomo climb", "Chianti day trips"},
		AverageFlightTime: 2.3,
		PriceTier:         MidRange,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "VCE", Name: "Venice", Country: "Italy", CountryCode: "IT",
		Scores:            Scores{Party: 45, Adventure: 30, Culture: 93, Luxury: 88, Relaxation: 62},
		Highlights:        []string{"Grand Canal", "St Mark's Basilica", "Murano glassworks"},
		AverageFlightTime: 2.2,
		PriceTier:         Premium,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "CDG", Name: "Paris", Country: "France", CountryCode: "FR",
		Scores:            Scores{Party: 78, Adventure: 35, Culture: 96, Luxury: 92, Relaxation: 55},
		Highlights:        []string{"Louvre", "Michelin dining", "Montmartre"},
		AverageFlightTime: 1.2,
		PriceTier:         Premium,
		BestMonths:        []string{"Apr", "May", "Jun", "Sep"},
	},
	{
		Code: "NCE", Name: "Nice", Country: "France", CountryCode: "FR",
		Scores:            Scores{Party: 68, Adventure: 55, Culture: 70, Luxury: 92, Relaxation: 82},
		Highlights:        []string{"Promenade des Anglais", "Monaco day trips", "Old Town markets"},
		AverageFlightTime: 2.0,
		PriceTier:         Premium,
		BestMonths:        []string{"May", "Jun", "Sep"},
	},
	{
		Code: "ATH", Name: "Athens", Country: "Greece", CountryCode: "GR",
		Scores:            Scores{Party: 72, Adventure: 55, Culture: 95, Luxury: 60, Relaxation: 68},
		Highlights:        []string{"Acropolis", "Plaka tavernas", "Athens Riviera beaches"},
		AverageFlightTime: 3.6,
		PriceTier:         Budget,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "JTR", Name: "Santorini", Country: "Greece", CountryCode: "GR",
		Scores:            Scores{Party: 62, Adventure: 45, Culture: 70, Luxury: 95, Relaxation: 90},
		Highlights:        []string{"Oia sunsets", "Caldera cliff hotels", "Volcanic beaches"},
		AverageFlightTime: 4.0,
		PriceTier:         Premium,
		BestMonths:        []string{"May", "Jun", "Sep"},
	},
	{
		Code: "JMK", Name: "Mykonos", Country: "Greece", CountryCode: "GR",
		Scores:            Scores{Party: 94, Adventure: 40, Culture: 50, Luxury: 88, Relaxation: 75},
		Highlights:        []string{"Beach clubs", "Little Venice", "Kato Mili windmills"},
		AverageFlightTime: 4.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Jun", "Jul", "Aug"},
	},
	{
		Code: "SPU", Name: "Split", Country: "Croatia", CountryCode: "HR",
		Scores:            Scores{Party: 80, Adventure: 78, Culture: 75, Luxury: 55, Relaxation: 80},
		Highlights:        []string{"Diocletian's Palace", "Island hopping", "Krka waterfalls"},
		AverageFlightTime: 2.5,
		PriceTier:         MidRange,
		BestMonths:        []string{"Jun", "Jul", "Sep"},
	},
	{
		Code: "DBV", Name: "Dubrovnik", Country: "Croatia", CountryCode: "HR",
		Scores:            Scores{Party: 65, Adventure: 62, Culture: 85, Luxury: 78, Relaxation: 80},
		Highlights:        []string{"City walls walk", "Sea kayaking", "Lokrum island"},
		AverageFlightTime: 2.8,
		PriceTier:         MidRange,
		BestMonths:        []string{"May", "Jun", "Sep"},
	},
	{
		Code: "EDI", Name: "Edinburgh", Country: "United Kingdom", CountryCode: "GB",
		Scores:            Scores{Party: 75, Adventure: 70, Culture: 90, Luxury: 55, Relaxation: 62},
		Highlights:        []string{"Royal Mile", "Arthur's Seat hike", "Festival Fringe"},
		AverageFlightTime: 1.3,
		PriceTier:         MidRange,
		BestMonths:        []string{"Jun", "Jul", "Aug"},
	},
	{
		Code: "DUB", Name: "Dublin", Country: "Ireland", CountryCode: "IE",
		Scores:            Scores{Party: 90, Adventure: 45, Culture: 80, Luxury: 50, Relaxation: 50},
		Highlights:        []string{"Temple Bar pubs", "Trinity College library", "Guinness Storehouse"},
		AverageFlightTime: 1.2,
		PriceTier:         MidRange,
		BestMonths:        []string{"May", "Jun", "Jul", "Aug"},
	},
	{
		Code: "CPH", Name: "Copenhagen", Country: "Denmark", CountryCode: "DK",
		Scores:            Scores{Party: 70, Adventure: 55, Culture: 82, Luxury: 78, Relaxation: 70},
		Highlights:        []string{"Nyhavn harbour", "New Nordic dining", "Tivoli Gardens"},
		AverageFlightTime: 1.8,
		PriceTier:         Premium,
		BestMonths:        []string{"May", "Jun", "Jul", "Aug"},
	},
	{
		Code: "OSL", Name: "Oslo", Country: "Norway", CountryCode: "NO",
		Scores:            Scores{Party: 50, Adventure: 85, Culture: 72, Luxury: 70, Relaxation: 85},
		Highlights:        []string{"Fjord cruises", "Opera House rooftop", "Holmenkollen ski jump"},
		AverageFlightTime: 2.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Jun", "Jul", "Aug"},
	},
	{
		Code: "TOS", Name: "Tromso", Country: "Norway", CountryCode: "NO",
		Scores:            Scores{Party: 45, Adventure: 92, Culture: 50, Luxury: 55, Relaxation: 90},
		Highlights:        []string{"Northern Lights", "Dog sledding", "Arctic Cathedral"},
		AverageFlightTime: 3.3,
		PriceTier:         Premium,
		BestMonths:        []string{"Nov", "Dec", "Jan", "Feb", "Mar"},
	},
	{
		Code: "MXP", Name: "Milan", Country: "Italy", CountryCode: "IT",
		Scores:            Scores{Party: 75, Adventure: 40, Culture: 85, Luxury: 94, Relaxation: 50},
		Highlights:        []string{"Quadrilatero della Moda", "The Last Supper", "Lake Como day trips"},
		AverageFlightTime: 2.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "RAK", Name: "Marrakech", Country: "Morocco", CountryCode: "MA",
		Scores:            Scores{Party: 65, Adventure: 72, Culture: 88, Luxury: 82, Relaxation: 70},
		Highlights:        []string{"Jemaa el-Fnaa", "Atlas Mountains trek", "Riad spas"},
		AverageFlightTime: 3.7,
		PriceTier:         Budget,
		BestMonths:        []string{"Mar", "Apr", "Oct", "Nov"},
	},
	{
		Code: "IST", Name: "Istanbul", Country: "Turkey", CountryCode: "TR",
		Scores:            Scores{Party: 78, Adventure: 50, Culture: 94, Luxury: 75, Relaxation: 58},
		Highlights:        []string{"Hagia Sophia", "Grand Bazaar", "Bosphorus cruise"},
		AverageFlightTime: 3.8,
		PriceTier:         Budget,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct"},
	},
	{
		Code: "DXB", Name: "Dubai", Country: "United Arab Emirates", CountryCode: "AE",
		Scores:            Scores{Party: 82, Adventure: 70, Culture: 60, Luxury: 98, Relaxation: 65},
		Highlights:        []string{"Burj Khalifa", "Desert safari", "Luxury malls"},
		AverageFlightTime: 7.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Nov", "Dec", "Jan", "Feb", "Mar"},
	},
	{
		Code: "BKK", Name: "Bangkok", Country: "Thailand", CountryCode: "TH",
		Scores:            Scores{Party: 90, Adventure: 60, Culture: 85, Luxury: 70, Relaxation: 65},
		Highlights:        []string{"Khao San Road", "Grand Palace", "Floating markets"},
		AverageFlightTime: 11.0,
		PriceTier:         Budget,
		BestMonths:        []string{"Nov", "Dec", "Jan", "Feb"},
	},
	{
		Code: "DPS", Name: "Bali", Country: "Indonesia", CountryCode: "ID",
		Scores:            Scores{Party: 75, Adventure: 82, Culture: 78, Luxury: 80, Relaxation: 95},
		Highlights:        []string{"Ubud rice terraces", "Uluwatu surf", "Beach villas"},
		AverageFlightTime: 16.5,
		PriceTier:         MidRange,
		BestMonths:        []string{"May", "Jun", "Jul", "Aug", "Sep"},
	},
	{
		Code: "MLE", Name: "Male", Country: "Maldives", CountryCode: "MV",
		Scores:            Scores{Party: 30, Adventure: 65, Culture: 35, Luxury: 99, Relaxation: 98},
		Highlights:        []string{"Overwater villas", "Reef snorkelling", "Private sandbanks"},
		AverageFlightTime: 10.5,
		PriceTier:         Premium,
		BestMonths:        []string{"Jan", "Feb", "Mar", "Apr"},
	},
	{
		Code: "JFK", Name: "New York", Country: "United States", CountryCode: "US",
		Scores:            Scores{Party: 92, Adventure: 45, Culture: 95, Luxury: 90, Relaxation: 40},
		Highlights:        []string{"Broadway", "Central Park", "Rooftop bars"},
		AverageFlightTime: 8.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Apr", "May", "Sep", "Oct", "Dec"},
	},
	{
		Code: "HND", Name: "Tokyo", Country: "Japan", CountryCode: "JP",
		Scores:            Scores{Party: 85, Adventure: 50, Culture: 96, Luxury: 88, Relaxation: 60},
		Highlights:        []string{"Shibuya nightlife", "Senso-ji temple", "Omakase dining"},
		AverageFlightTime: 14.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Mar", "Apr", "Oct", "Nov"},
	},
	{
		Code: "CPT", Name: "Cape Town", Country: "South Africa", CountryCode: "ZA",
		Scores:            Scores{Party: 72, Adventure: 92, Culture: 75, Luxury: 80, Relaxation: 85},
		Highlights:        []string{"Table Mountain hike", "Shark cage diving", "Winelands"},
		AverageFlightTime: 11.5,
		PriceTier:         MidRange,
		BestMonths:        []string{"Nov", "Dec", "Jan", "Feb", "Mar"},
	},
	{
		Code: "ZQN", Name: "Queenstown", Country: "New Zealand", CountryCode: "NZ",
		Scores:            Scores{Party: 65, Adventure: 99, Culture: 50, Luxury: 72, Relaxation: 90},
		Highlights:        []string{"Bungee jumping", "Milford Sound", "Remarkables skiing"},
		AverageFlightTime: 24.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Dec", "Jan", "Feb", "Jul"},
	},
	{
		Code: "CUN", Name: "Cancun", Country: "Mexico", CountryCode: "MX",
		Scores:            Scores{Party: 92, Adventure: 75, Culture: 60, Luxury: 82, Relaxation: 88},
		Highlights:        []string{"Hotel Zone clubs", "Cenote diving", "Chichen Itza"},
		AverageFlightTime: 11.0,
		PriceTier:         MidRange,
		BestMonths:        []string{"Dec", "Jan", "Feb", "Mar", "Apr"},
	},
	{
		Code: "SEZ", Name: "Mahe", Country: "Seychelles", CountryCode: "SC",
		Scores:            Scores{Party: 25, Adventure: 60, Culture: 40, Luxury: 95, Relaxation: 97},
		Highlights:        []string{"Anse Source d'Argent", "Vallee de Mai", "Island hopping"},
		AverageFlightTime: 12.0,
		PriceTier:         Premium,
		BestMonths:        []string{"Apr", "May", "Oct", "Nov"},
	},
	{
		Code: "FNC", Name: "Madeira", Country: "Portugal", CountryCode: "PT",
		Scores:            Scores{Party: 45, Adventure: 88, Culture: 55, Luxury: 65, Relaxation: 92},
		Highlights:        []string{"Levada walks", "Pico do Arieiro sunrise", "Funchal wine lodges"},
		AverageFlightTime: 4.0,
		PriceTier:         MidRange,
		BestMonths:        []string{"Apr", "May", "Jun", "Sep"},
	},
}
