package source

// Interner hands out one shared copy per distinct string. The lexer keeps
// one per run so that repeated short whitespace trivia does not allocate.
// Not safe for concurrent use.
type Interner struct {
	pool map[string]string
	hits int
}

func NewInterner(seed ...string) *Interner {
	in := &Interner{pool: make(map[string]string, len(seed)+8)}
	for _, s := range seed {
		in.pool[s] = s
	}
	return in
}

// Canonical returns the shared copy of s, storing s on first sight.
func (i *Interner) Canonical(s string) string {
	if c, ok := i.pool[s]; ok {
		i.hits++
		return c
	}
	i.pool[s] = s
	return s
}

// Len returns the number of distinct strings.
func (i *Interner) Len() int { return len(i.pool) }

// Hits counts Canonical calls answered from the pool.
func (i *Interner) Hits() int { return i.hits }
