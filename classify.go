package langid

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/future-architect/langid/nlp"
)

// Model is the pruned, read-only feature table. It answers an unbounded
// number of classification queries and is safe to share between goroutines.
type Model struct {
	features map[nlp.Bigram]*Occurrence
	option   Option
}

// Features returns the number of distinct bigrams that survived pruning.
func (m *Model) Features() int {
	return len(m.features)
}

// Tag returns the configured display tag for a language.
func (m *Model) Tag(lang Language) string {
	if lang == Minority {
		return m.option.MinorityTag
	}
	return m.option.EnglishTag
}

// Occurrence looks up the counters for one bigram. The second return value
// reports whether the bigram survived pruning.
func (m *Model) Occurrence(bigram nlp.Bigram) (Occurrence, bool) {
	occ, ok := m.features[bigram]
	if !ok {
		return Occurrence{}, false
	}
	return *occ, true
}

// Classify normalizes the word and sums smoothed log probabilities over its
// bigram set, one running sum per language. Bigrams the model has never seen
// (or pruned away) contribute to neither sum. The minority language wins
// only on a strictly greater sum; ties go to English, exactly as the
// original classifier behaved.
func (m *Model) Classify(word string) (Result, error) {
	word = nlp.Normalize(word)
	if nlp.HasMarkerLiteral(word) {
		return Result{}, fmt.Errorf("%q: %w", word, ErrMarkerLiteral)
	}
	result := Result{Word: word}
	for bigram := range nlp.BigramsOf(word) {
		occ, ok := m.features[bigram]
		if !ok {
			continue
		}
		result.MinorityLogProb += m.logProb(occ, Minority)
		result.EnglishLogProb += m.logProb(occ, English)
	}
	if result.MinorityLogProb > result.EnglishLogProb {
		result.Language = Minority
	} else {
		result.Language = English
	}
	result.Tag = m.Tag(result.Language)
	return result, nil
}

// logProb is ln((c+1) / (t+F)): the add-one smoothed probability of the
// bigram under lang, with the number of surviving features F as the
// smoothing vocabulary. Numerator and denominator are both at least 1, so
// the logarithm is always finite.
func (m *Model) logProb(occ *Occurrence, lang Language) float64 {
	numerator := float64(occ.Of(lang) + 1)
	denominator := float64(occ.Total() + uint32(len(m.features)))
	return math.Log(numerator) - math.Log(denominator)
}

// ClassifyBatch classifies many words in parallel. The model is read-only,
// so workers share it without locking. Results keep the order of the input
// words. The first invalid word fails the whole batch.
func (m *Model) ClassifyBatch(ctx context.Context, words []string) ([]Result, error) {
	results := make([]Result, len(words))
	errGroup, _ := errgroup.WithContext(ctx)
	errGroup.SetLimit(m.option.BatchConcurrency)
	for i, word := range words {
		i, word := i, word
		errGroup.Go(func() error {
			result, err := m.Classify(word)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
