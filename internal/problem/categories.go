package problem

// Animal is a countable category shown in farm problems.
type Animal struct {
	Name   string
	Plural string
	Emoji  string
}

// Animals is the farm category list.
var Animals = []Animal{
	{Name: "cow", Plural: "cows", Emoji: "🐄"},
	{Name: "sheep", Plural: "sheep", Emoji: "🐑"},
	{Name: "pig", Plural: "pigs", Emoji: "🐖"},
	{Name: "chicken", Plural: "chickens", Emoji: "🐔"},
	{Name: "duck", Plural: "ducks", Emoji: "🦆"},
	{Name: "horse", Plural: "horses", Emoji: "🐎"},
}

// AnimalByName looks up an animal by its singular name.
func AnimalByName(name string) (Animal, bool) {
	for _, a := range Animals {
		if a.Name == name {
			return a, true
		}
	}
	return Animal{}, false
}

// Label returns the singular or plural name for a count.
func (a Animal) Label(count int) string {
	if count == 1 {
		return a.Name
	}
	return a.Plural
}
