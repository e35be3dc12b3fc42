package curl

// Cmd is the flag-level view of a tokenized curl invocation. A command may
// hold several segments when curl's --next separator appears.
type Cmd struct {
	Segs []Seg
}

type Seg struct {
	Items []Item
	// Unk collects flags without a definition; Trunc collects flags whose
	// value argument was missing. Both degrade to warnings.
	Unk   []string
	Trunc []string
}

type Item struct {
	Opt   Opt
	Pos   string
	IsOpt bool
}

type Opt struct {
	Key string
	Val string
}
