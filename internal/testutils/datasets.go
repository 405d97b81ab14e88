package testutils

import "github.com/l7mp/dquery/pkg/document"

type doc = document.Document

// Every dataset is returned as a fresh value so tests may not interfere with each other.

// Kitties is a list of {name, age, color}.
func Kitties() document.Collection {
	return document.Collection{
		{"name": "Tiger", "age": int64(5), "color": "orange"},
		{"name": "Snickers", "age": int64(8), "color": "orange"},
		{"name": "Felicia", "age": int64(2), "color": "grey"},
		{"name": "Max", "age": int64(1), "color": "tuxedo"},
	}
}

// Clubs is a list of {club, members}.
func Clubs() document.Collection {
	return document.Collection{
		{"club": "Drama", "members": []any{"Louisa", "Pam", "Nathaniel"}},
		{"club": "Band", "members": []any{"Leta", "Robbie", "Pam"}},
		{"club": "Art", "members": []any{"Pam", "Louisa", "Will"}},
		{"club": "Chess", "members": []any{"Pam", "David", "Christie", "Pam"}},
	}
}

// Mods is a list of {mod, students, instructors}.
func Mods() document.Collection {
	return document.Collection{
		{"mod": int64(1), "students": int64(27), "instructors": int64(3)},
		{"mod": int64(2), "students": int64(22), "instructors": int64(2)},
		{"mod": int64(3), "students": int64(30), "instructors": int64(3)},
		{"mod": int64(4), "students": int64(32), "instructors": int64(4)},
	}
}

// Cakes is a list of {cakeFlavor, filling, frosting, toppings, inStock}.
func Cakes() document.Collection {
	return document.Collection{
		{"cakeFlavor": "dark chocolate", "filling": nil, "frosting": "dark chocolate ganache",
			"toppings": []any{"dutch process cocoa", "toasted sugar", "smoked sea salt"}, "inStock": int64(15)},
		{"cakeFlavor": "yellow", "filling": "citrus glaze", "frosting": "chantilly cream",
			"toppings": []any{"berries", "sugar"}, "inStock": int64(14)},
		{"cakeFlavor": "white chiffon", "filling": "mint", "frosting": "whipped cream",
			"toppings": []any{"mint", "sugar"}, "inStock": int64(0)},
		{"cakeFlavor": "red velvet", "filling": nil, "frosting": "cream cheese",
			"toppings": []any{"berries", "cream cheese"}, "inStock": int64(4)},
	}
}

// Classrooms is a list of {roomLetter, program, capacity}.
func Classrooms() document.Collection {
	return document.Collection{
		{"roomLetter": "A", "program": "FE", "capacity": int64(19)},
		{"roomLetter": "B", "program": "BE", "capacity": int64(18)},
		{"roomLetter": "C", "program": "FE", "capacity": int64(27)},
		{"roomLetter": "D", "program": "BE", "capacity": int64(29)},
		{"roomLetter": "E", "program": "FE", "capacity": int64(17)},
	}
}

// Books is a list of {title, author, genre, published}.
func Books() document.Collection {
	return document.Collection{
		{"title": "Harry Potter and the Sorcerer's Stone", "author": "J. K. Rowling",
			"genre": "Fantasy", "published": int64(1997)},
		{"title": "The Shining", "author": "Stephen King", "genre": "Horror", "published": int64(1977)},
		{"title": "In Cold Blood", "author": "Truman Capote", "genre": "True Crime", "published": int64(1966)},
		{"title": "Jurassic Park", "author": "Michael Crichton", "genre": "Science Fiction",
			"published": int64(1990)},
		{"title": "Catch-22", "author": "Joseph Heller", "genre": "Satire", "published": int64(1961)},
		{"title": "The Hunger Games", "author": "Suzanne Collins", "genre": "Dystopian",
			"published": int64(2008)},
		{"title": "Life of Pi", "author": "Yann Martel", "genre": "Fiction", "published": int64(2001)},
		{"title": "The Help", "author": "Kathryn Stockett", "genre": "Fiction", "published": int64(2009)},
		{"title": "Gone Girl", "author": "Gillian Flynn", "genre": "Thriller", "published": int64(2012)},
	}
}

// Weather is a list of {location, type, humidity, temperature: {high, low}}.
func Weather() document.Collection {
	return document.Collection{
		{"location": "Boulder, Colorado", "type": "mostly sunny", "humidity": int64(84),
			"temperature": doc{"high": int64(40), "low": int64(30)}},
		{"location": "San Juan, Puerto Rico", "type": "cloudy", "humidity": int64(96),
			"temperature": doc{"high": int64(90), "low": int64(76)}},
		{"location": "Raleigh, North Carolina", "type": "mostly sunny", "humidity": int64(54),
			"temperature": doc{"high": int64(65), "low": int64(43)}},
		{"location": "Anchorage, Alaska", "type": "cloudy", "humidity": int64(76),
			"temperature": doc{"high": int64(19), "low": int64(10)}},
		{"location": "Portland, Oregon", "type": "sunny", "humidity": int64(89),
			"temperature": doc{"high": int64(60), "low": int64(48)}},
	}
}

// NationalParks is a list of {name, location, visited, activities}.
func NationalParks() document.Collection {
	return document.Collection{
		{"name": "Yellowstone", "location": "Wyoming", "visited": true,
			"activities": []any{"hiking", "camping", "fly fishing"}},
		{"name": "Rocky Mountain", "location": "Colorado", "visited": false,
			"activities": []any{"hiking", "camping", "rock climbing"}},
		{"name": "Acadia", "location": "Maine", "visited": true,
			"activities": []any{"hiking", "biking", "fishing"}},
		{"name": "Zion", "location": "Utah", "visited": false,
			"activities": []any{"hiking", "rock climbing", "canyoneering"}},
	}
}

// Breweries is a list of {name, address, beers: [{name, type, abv, ibu}]}.
func Breweries() document.Collection {
	return document.Collection{
		{"name": "Little Machine Brew", "address": "2924 W 20th Ave", "beers": []any{
			doc{"name": "Day Pass", "type": "IPA", "abv": 6.2, "ibu": int64(61)},
			doc{"name": "Ocean Flight", "type": "Pale Ale", "abv": 5.1, "ibu": int64(38)},
			doc{"name": "Pale Mammoth", "type": "Wheat", "abv": 5.0, "ibu": int64(7)},
		}},
		{"name": "Ratio Beerworks", "address": "2920 Larimer St", "beers": []any{
			doc{"name": "Dear You", "type": "Saison", "abv": 6.6, "ibu": int64(25)},
			doc{"name": "Domino Effect", "type": "IPA", "abv": 7.4, "ibu": int64(70)},
		}},
		{"name": "Spangalang Brewery", "address": "2736 Welton St", "beers": []any{
			doc{"name": "Bonus Pillow", "type": "Pale Ale", "abv": 5.5, "ibu": int64(45)},
		}},
		{"name": "Great Divide Brewing Co", "address": "2201 Arapahoe St", "beers": []any{
			doc{"name": "Barrel Aged Nature's Sweater", "type": "Barley Wine", "abv": 10.9, "ibu": int64(40)},
			doc{"name": "Yeti", "type": "Imperial Stout", "abv": 9.5, "ibu": int64(75)},
		}},
	}
}

// Instructors is a list of {name, module, teaches}.
func Instructors() document.Collection {
	return document.Collection{
		{"name": "Pam", "module": int64(2), "teaches": []any{"scope", "recursion"}},
		{"name": "Brittany", "module": int64(2), "teaches": []any{"oop", "pwas"}},
		{"name": "Robbie", "module": int64(4), "teaches": []any{"node", "angular"}},
		{"name": "Louisa", "module": int64(1), "teaches": []any{"html", "css", "javascript"}},
		{"name": "Christie", "module": int64(3), "teaches": []any{"javascript", "react"}},
		{"name": "Leta", "module": int64(4), "teaches": []any{"recursion", "redux"}},
	}
}

// Cohorts is a list of {cohort, module, studentCount, curriculum}.
func Cohorts() document.Collection {
	return document.Collection{
		{"cohort": int64(1806), "module": int64(1), "studentCount": int64(27),
			"curriculum": []any{"html", "css", "javascript"}},
		{"cohort": int64(1804), "module": int64(2), "studentCount": int64(21),
			"curriculum": []any{"javascript", "es6", "scope", "recursion", "oop"}},
		{"cohort": int64(1803), "module": int64(3), "studentCount": int64(20),
			"curriculum": []any{"javascript", "react", "redux"}},
		{"cohort": int64(1801), "module": int64(4), "studentCount": int64(18),
			"curriculum": []any{"node", "angular", "scope", "oop"}},
	}
}

// Bosses maps a key to {name, sidekicks: [{name}]}.
func Bosses() document.Document {
	return document.Document{
		"jafar": doc{"name": "Jafar", "sidekicks": []any{doc{"name": "Iago"}}},
		"ursula": doc{"name": "Ursula", "sidekicks": []any{
			doc{"name": "Flotsam"}, doc{"name": "Jetsam"}}},
		"scar": doc{"name": "Scar", "sidekicks": []any{
			doc{"name": "Shenzi"}, doc{"name": "Banzai"}, doc{"name": "Ed"}}},
	}
}

// Sidekicks is a list of {name, boss, loyaltyToBoss}.
func Sidekicks() document.Collection {
	return document.Collection{
		{"name": "Iago", "boss": "Jafar", "loyaltyToBoss": int64(3)},
		{"name": "Flotsam", "boss": "Ursula", "loyaltyToBoss": int64(7)},
		{"name": "Jetsam", "boss": "Ursula", "loyaltyToBoss": int64(13)},
		{"name": "Shenzi", "boss": "Scar", "loyaltyToBoss": int64(6)},
		{"name": "Banzai", "boss": "Scar", "loyaltyToBoss": int64(4)},
		{"name": "Ed", "boss": "Scar", "loyaltyToBoss": int64(6)},
	}
}

// Constellations maps a key to {names, stars, bestViewingMonths}.
func Constellations() document.Document {
	return document.Document{
		"orion": doc{"names": []any{"Orion", "The Hunter"}, "stars": []any{"Rigel", "Betelgeuse"},
			"bestViewingMonths": []any{"January"}},
		"bigDipper": doc{"names": []any{"The Big Dipper", "The Plough"}, "stars": []any{"Dubhe", "Merak"},
			"bestViewingMonths": []any{"April"}},
	}
}

// Stars is a list of {name, visualMagnitude, constellation, lightYearsFromEarth, color}.
func Stars() document.Collection {
	return document.Collection{
		{"name": "Sirius", "visualMagnitude": -1.46, "constellation": "Canis Major",
			"lightYearsFromEarth": 8.6, "color": "white"},
		{"name": "Rigel", "visualMagnitude": 0.13, "constellation": "Orion",
			"lightYearsFromEarth": int64(860), "color": "blue"},
		{"name": "Vega", "visualMagnitude": 0.03, "constellation": "Lyra",
			"lightYearsFromEarth": int64(25), "color": "blue"},
		{"name": "Betelgeuse", "visualMagnitude": 0.5, "constellation": "Orion",
			"lightYearsFromEarth": int64(640), "color": "red"},
		{"name": "Polaris", "visualMagnitude": 1.97, "constellation": "The Little Dipper",
			"lightYearsFromEarth": int64(323), "color": "yellow"},
		{"name": "Dubhe", "visualMagnitude": 1.79, "constellation": "The Big Dipper",
			"lightYearsFromEarth": int64(123), "color": "orange"},
	}
}

// Weapons maps a weapon name to {damage, range}.
func Weapons() document.Document {
	return document.Document{
		"dagger":    doc{"damage": int64(2), "range": int64(1)},
		"mace":      doc{"damage": int64(4), "range": int64(1)},
		"sword":     doc{"damage": int64(5), "range": int64(1)},
		"bow":       doc{"damage": int64(4), "range": int64(10)},
		"crossbow":  doc{"damage": int64(6), "range": int64(12)},
		"magicWand": doc{"damage": int64(4), "range": int64(15)},
	}
}

// Characters is a list of {name, occupation, weapons}.
func Characters() document.Collection {
	return document.Collection{
		{"name": "Avatar", "occupation": "Fighter", "weapons": []any{"dagger", "sword", "bow"}},
		{"name": "Iolo", "occupation": "Bard", "weapons": []any{"crossbow", "dagger"}},
		{"name": "Shamino", "occupation": "Ranger", "weapons": []any{"sword", "magicWand"}},
	}
}

// Dinosaurs maps a dinosaur name to {carnivore, herbivore, isAwesome}.
func Dinosaurs() document.Document {
	return document.Document{
		"Tyrannosaurus Rex": doc{"carnivore": true, "herbivore": false, "isAwesome": true},
		"Velociraptor":      doc{"carnivore": true, "herbivore": false, "isAwesome": true},
		"Brachiosaurus":     doc{"carnivore": false, "herbivore": true, "isAwesome": false},
		"Dilophosaurus":     doc{"carnivore": true, "herbivore": false, "isAwesome": true},
		"Triceratops":       doc{"carnivore": false, "herbivore": true, "isAwesome": true},
		"Gallimimus":        doc{"carnivore": false, "herbivore": true, "isAwesome": false},
	}
}

// Humans maps a name to {yearBorn, nationality, imdbStarMeterRating}.
func Humans() document.Document {
	return document.Document{
		"Sam Neill":           doc{"yearBorn": int64(1947), "nationality": "Northern Irish", "imdbStarMeterRating": int64(0)},
		"Laura Dern":          doc{"yearBorn": int64(1967), "nationality": "American", "imdbStarMeterRating": int64(0)},
		"Jeff Goldblum":       doc{"yearBorn": int64(1952), "nationality": "American", "imdbStarMeterRating": int64(0)},
		"Chris Pratt":         doc{"yearBorn": int64(1979), "nationality": "American", "imdbStarMeterRating": int64(2)},
		"Bryce Dallas Howard": doc{"yearBorn": int64(1981), "nationality": "American", "imdbStarMeterRating": int64(3)},
		"Justin Duncan":       doc{"yearBorn": int64(1985), "nationality": "Alien", "imdbStarMeterRating": int64(0)},
		"Karin Ohman":         doc{"yearBorn": int64(1995), "nationality": "Chinese", "imdbStarMeterRating": int64(0)},
		"Tom Wilhoit":         doc{"yearBorn": int64(1990), "nationality": "Kiwi", "imdbStarMeterRating": int64(1)},
		"Jeo D":               doc{"yearBorn": int64(1990), "nationality": "Martian", "imdbStarMeterRating": int64(0)},
	}
}

// Movies is a list of {title, director, cast, dinos, yearReleased}.
func Movies() document.Collection {
	return document.Collection{
		{"title": "Jurassic Park", "director": "Steven Spielberg",
			"cast": []any{"Sam Neill", "Laura Dern", "Jeff Goldblum"},
			"dinos": []any{"Tyrannosaurus Rex", "Velociraptor", "Brachiosaurus", "Dilophosaurus"},
			"yearReleased": int64(1993)},
		{"title": "The Lost World: Jurassic Park", "director": "Steven Spielberg",
			"cast": []any{"Jeff Goldblum"},
			"dinos": []any{"Tyrannosaurus Rex", "Velociraptor", "Triceratops"},
			"yearReleased": int64(1997)},
		{"title": "Jurassic World", "director": "Colin Trevorrow",
			"cast": []any{"Chris Pratt", "Bryce Dallas Howard"},
			"dinos": []any{"Velociraptor", "Gallimimus"},
			"yearReleased": int64(2015)},
	}
}
