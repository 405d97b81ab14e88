// Package prompts implements the dataset exercises (kitties, cakes, classrooms, breweries, books,
// weather, national parks, instructors and cohorts, bosses and sidekicks, constellations and
// stars, characters and weapons, dinosaurs, humans and movies) as pure functions over the
// primitives in the query package.
//
// Every function takes the datasets it reads as arguments and returns a freshly allocated value;
// the arguments are never modified. List datasets are document.Collections, name-keyed datasets
// (bosses, constellations, weapons, dinosaurs, humans) are documents mapping a name to a record.
//
// The same exercises are also available as a declarative plan, see Catalog.
package prompts
