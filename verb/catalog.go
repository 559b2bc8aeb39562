package verb

import "github.com/kbukum/knife/engine"

// Catalog returns a registry of every verb that takes no arguments, keyed
// by verb name. Random verbs use the global source.
func Catalog() *engine.Registry {
	r := engine.NewRegistry()
	for _, v := range []engine.Verb{
		Map(), StarMap(), Each(),
		Filter(), Reject(), Partition(), Compact(), Members(), DeepMembers(),
		All(), Any(), Unique(), Difference(), Intersection(), Union(),
		SymmetricDifference(), Disjointed(), Subset(), Superset(),
		Sum(0), FSum(), Average(), Min(), Max(), MinMax(), Median(), Mode(),
		Uncommon(), Frequency(), Range(),
		Sort(), Reverse(), Group(), Shuffle(nil), Choice(nil),
		Reduce(), ReduceRight(), Flatten(), Smash(), Merge(), Pairwise(),
		RoundRobin(), Zip(),
		Permutations(0),
		First(0), Last(0), Initial(), Rest(),
	} {
		r.Register(v)
	}
	return r
}
