package sigla

import (
	"context"

	"github.com/oremus-tools/sigla/core/refs"
)

// Result is one resolved citation: a human-readable label and the rendered
// passage body. Immutable once created.
type Result struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Pipeline runs the citation recognition and resolution stages against a
// reference service. It holds no mutable state; one Pipeline may serve
// concurrent requests.
type Pipeline struct {
	svc *refs.Service
}

// NewPipeline creates a pipeline over the given reference service.
func NewPipeline(svc *refs.Service) *Pipeline {
	return &Pipeline{svc: svc}
}

// FindReferences scans text and returns the deduplicated structured
// references for every recognized citation, in text order. It is a pure
// computation; no store access happens until resolution.
func (p *Pipeline) FindReferences(text string) []refs.Reference {
	filter := newDedupeFilter()
	var out []refs.Reference
	for _, candidate := range Scan(text) {
		for _, ref := range p.build(candidate) {
			if filter.Add(ref) {
				out = append(out, ref)
			}
		}
	}
	return out
}

// Resolve renders each reference into a labeled passage. References that
// expand to no verse identifiers, or whose verses are absent from the
// corpus, are skipped silently. Only store I/O failures surface as errors.
func (p *Pipeline) Resolve(ctx context.Context, references []refs.Reference) ([]Result, error) {
	var results []Result
	for _, ref := range references {
		ids, err := p.svc.VerseIDs(ctx, []refs.Reference{ref})
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			continue
		}
		text, err := p.svc.PassageText(ctx, ids)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}
		results = append(results, Result{
			Label: p.svc.FormatLabel(ref),
			Text:  text,
		})
	}
	return results, nil
}

// Run executes the full pipeline on raw text: scan, build, deduplicate,
// resolve. It returns the resolved results alongside the accepted structured
// references (the latter are presented to the user with the results).
func (p *Pipeline) Run(ctx context.Context, text string) ([]Result, []refs.Reference, error) {
	references := p.FindReferences(text)
	results, err := p.Resolve(ctx, references)
	if err != nil {
		return nil, nil, err
	}
	return results, references, nil
}
