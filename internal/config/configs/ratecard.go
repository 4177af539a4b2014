package configs

// RateCard selects where CPM rates come from. An empty File means the
// built-in reference card.
type RateCard struct {
	File string `env:"FILE"`
}
