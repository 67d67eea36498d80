package domain

import "errors"

var (
	ErrNoQuotes     = errors.New("no quotes available")
	ErrQuotesHidden = errors.New("motivational quotes are turned off")
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var DefaultQuotes = []Quote{
	{Text: "Thousands have lived without love, not one without water.", Author: "W.H. Auden"},
	{Text: "Water is the driving force of all nature.", Author: "Leonardo da Vinci"},
	{Text: "The cure for anything is salt water: sweat, tears or the sea.", Author: "Isak Dinesen"},
	{Text: "With every drop of water you drink, every breath you take, you are connected to the sea.", Author: "Sylvia Earle"},
	{Text: "Pure water is the world's first and foremost medicine.", Author: "Slovakian Proverb"},
	{Text: "You don't have to be extreme, just consistent.", Author: "Unknown"},
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Text: "A healthy outside starts from the inside.", Author: "Robert Urich"},
	{Text: "The difference between who you are and who you want to be is what you do.", Author: "Unknown"},
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
}

// PickQuote draws a quote whose text differs from current. intn must return
// a value in [0, n).
func PickQuote(quotes []Quote, current string, intn func(n int) int) (Quote, error) {
	if len(quotes) == 0 {
		return Quote{}, ErrNoQuotes
	}

	candidates := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Text != current {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return quotes[0], nil
	}
	return candidates[intn(len(candidates))], nil
}
