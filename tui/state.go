package tui

import (
	"math/rand/v2"

	"strummy/debug"
	"strummy/pattern"
	"strummy/theme"
)

// AppState is the single working pattern plus what screens need to act on it.
// The controller owns it; screens borrow it for one View or HandleKey call.
type AppState struct {
	pattern     *pattern.Pattern
	patternFile string
	theme       *theme.Theme
	rng         *rand.Rand

	// bumped whenever the pattern is replaced wholesale
	revision int
}

func NewAppState(p *pattern.Pattern, patternFile string, rng *rand.Rand, th *theme.Theme) *AppState {
	if p == nil {
		p = pattern.New()
	}
	if th == nil {
		th = theme.New(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AppState{
		pattern:     p,
		patternFile: patternFile,
		theme:       th,
		rng:         rng,
	}
}

func (s *AppState) Pattern() *pattern.Pattern { return s.pattern }
func (s *AppState) PatternFile() string       { return s.patternFile }
func (s *AppState) Theme() *theme.Theme       { return s.theme }

// Revision changes every time Replace runs. Screens holding an index into
// the pattern compare it to know the index may be stale.
func (s *AppState) Revision() int { return s.revision }

// Replace swaps in a new pattern
func (s *AppState) Replace(p *pattern.Pattern) {
	s.pattern = p
	s.revision++
}

// Regenerate replaces the pattern with a random one of the same length
func (s *AppState) Regenerate() {
	s.Replace(pattern.Generate(s.rng, s.pattern.Len()))
	debug.Log("app", "regenerated %q", s.pattern.Shorthand())
}

// Save writes the pattern to the configured file
func (s *AppState) Save() error {
	if err := pattern.Save(s.pattern, s.patternFile); err != nil {
		debug.Error("store", err, "save %s", s.patternFile)
		return err
	}
	debug.Log("store", "saved %d strokes to %s", s.pattern.Len(), s.patternFile)
	return nil
}

// Load replaces the pattern with the configured file's content. On error the
// current pattern is kept.
func (s *AppState) Load() error {
	p, err := pattern.Load(s.patternFile)
	if err != nil {
		debug.Error("store", err, "load %s", s.patternFile)
		return err
	}
	s.Replace(p)
	debug.Log("store", "loaded %d strokes from %s", p.Len(), s.patternFile)
	return nil
}
