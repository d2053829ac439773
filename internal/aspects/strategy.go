package aspects

import (
	"github.com/vd09-projects/rst-aspect-miner/internal/model"
	"github.com/vd09-projects/rst-aspect-miner/internal/resources"
	"github.com/vd09-projects/rst-aspect-miner/internal/reviews"
	"github.com/vd09-projects/rst-aspect-miner/internal/utils"
)

// Input is what every strategy sees for one brand run.
type Input struct {
	Brand    string // reviews.AllBrands or a brand name
	Keyword  string // product keyword, root of the All hierarchy
	Selected []Selected
	Words    *resources.Wordlists
	TopK     int
}

// Root is the top of the hierarchy: the keyword for All, else the brand.
func (in Input) Root() string {
	if in.Brand == "" || in.Brand == reviews.AllBrands {
		return in.Keyword
	}
	return in.Brand
}

// Strategy contributes aspect pairs for a run.
type Strategy interface {
	Name() string
	Apply(in Input) []model.AspectPair
}

type primaryStrategy struct{}

func (primaryStrategy) Name() string { return "primary" }

func (primaryStrategy) Apply(in Input) []model.AspectPair {
	return PrimaryPairs(in.Root(), in.Words.PrimaryAspects)
}

type secondaryStrategy struct{}

func (secondaryStrategy) Name() string { return "secondary" }

func (secondaryStrategy) Apply(in Input) []model.AspectPair {
	return SecondaryPairs(in.Selected, in.Words, in.TopK)
}

// Primary links the run root to each primary aspect.
func Primary() Strategy { return primaryStrategy{} }

// Secondary links primary aspects to their most frequent secondary aspects.
func Secondary() Strategy { return secondaryStrategy{} }

// Registry holds strategies in order.
type Registry struct {
	strategies []Strategy
}

func NewRegistry() *Registry {
	return &Registry{strategies: []Strategy{}}
}

// DefaultRegistry is the primary then secondary pair set used by the
// aspectpairs command.
func DefaultRegistry() *Registry {
	return NewRegistry().Register(Primary(), Secondary())
}

func (r *Registry) Register(strats ...Strategy) *Registry {
	r.strategies = append(r.strategies, strats...)
	return r
}

func (r *Registry) Strategies() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Generate runs every strategy and returns the union of their pairs in
// registration order, without repeats.
func (r *Registry) Generate(in Input) []model.AspectPair {
	var out []model.AspectPair
	for _, s := range r.strategies {
		out = append(out, s.Apply(in)...)
	}
	return utils.Uniq(out)
}
