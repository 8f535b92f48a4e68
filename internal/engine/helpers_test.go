package engine

// Shared test doubles. fixedRand always returns the same roll; scriptRand
// replays a fixed sequence.

type fixedRand int

func (f fixedRand) Intn(n int) int {
	v := int(f)
	if v >= n {
		v = n - 1
	}
	return v
}

type scriptRand struct {
	seq []int
	pos int
}

func (s *scriptRand) Intn(n int) int {
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return v % n
}

// withCatalog runs fn with a temporary content pack installed.
func withCatalog(p *ContentPack, fn func()) {
	prev := catalogOverride
	catalogOverride = p
	defer func() { catalogOverride = prev }()
	fn()
}
