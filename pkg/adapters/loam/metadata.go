package loam

import "github.com/aretw0/nfasim/pkg/domain"

// Metadata is the frontmatter of a catalog document describing one automaton.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type Metadata struct {
	ID          string              `json:"id" mapstructure:"id"`
	Name        string              `json:"name" mapstructure:"name"`
	Description string              `json:"description" mapstructure:"description"`
	Alphabet    []string            `json:"alphabet" mapstructure:"alphabet"`
	States      []string            `json:"states" mapstructure:"states"`
	Start       string              `json:"start" mapstructure:"start"`
	Accept      []string            `json:"accept" mapstructure:"accept"`
	Epsilon     string              `json:"epsilon" mapstructure:"epsilon"`
	Transitions []domain.Transition `json:"transitions" mapstructure:"transitions"`

	// Inputs holds sample words, each either a list of symbols or one
	// space-separated string.
	Inputs []any `json:"inputs" mapstructure:"inputs"`
}
