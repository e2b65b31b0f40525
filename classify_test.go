package langid

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildModel(t *testing.T, minority, english string) *Model {
	t.Helper()
	trainer := NewTrainer()
	assert.Nil(t, trainer.Train(strings.NewReader(minority), Minority))
	assert.Nil(t, trainer.Train(strings.NewReader(english), English))
	return trainer.Prune()
}

func TestClassify(t *testing.T) {
	// every bigram of "aa" is pure minority evidence, every bigram of "bb"
	// pure English evidence
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	assert.Equal(t, 6, model.Features())

	result, err := model.Classify("aa")
	assert.Nil(t, err)
	assert.Equal(t, Minority, result.Language)
	assert.Equal(t, "crk", result.Tag)

	result, err = model.Classify("bb")
	assert.Nil(t, err)
	assert.Equal(t, English, result.Language)
	assert.Equal(t, "eng", result.Tag)
}

func TestClassifyNormalizesQuery(t *testing.T) {
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	result, err := model.Classify("ÂA!\n")
	assert.Nil(t, err)
	assert.Equal(t, "aa", result.Word)
	assert.Equal(t, Minority, result.Language)
}

func TestClassifyUnknownBigramsContributeNothing(t *testing.T) {
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	result, err := model.Classify("zz")
	assert.Nil(t, err)
	assert.Zero(t, result.MinorityLogProb)
	assert.Zero(t, result.EnglishLogProb)
	// empty evidence is a tie, and ties go to English
	assert.Equal(t, English, result.Language)
}

func TestClassifyTieGoesToEnglish(t *testing.T) {
	// identical training data for both languages makes every word an exact tie
	model := buildModel(t, "ma\nma\n", "ma\nma\n")
	result, err := model.Classify("ma")
	assert.Nil(t, err)
	assert.Equal(t, result.MinorityLogProb, result.EnglishLogProb)
	assert.Equal(t, English, result.Language)
}

func TestClassifyEmptyModelEndToEnd(t *testing.T) {
	// two single-word lists share no bigram, so pruning empties the table;
	// classification still resolves deterministically via the tie-break
	model := buildModel(t, "acimosis\n", "puppy\n")
	assert.Equal(t, 0, model.Features())
	result, err := model.Classify("puppy")
	assert.Nil(t, err)
	assert.Zero(t, result.MinorityLogProb)
	assert.Zero(t, result.EnglishLogProb)
	assert.Equal(t, English, result.Language)
}

func TestClassifyDeterminism(t *testing.T) {
	model := buildModel(t, "aa\naa\nab\nab\n", "bb\nbb\nba\nba\n")
	first, err := model.Classify("abba")
	assert.Nil(t, err)
	for i := 0; i < 20; i++ {
		again, err := model.Classify("abba")
		assert.Nil(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyRejectsMarkerLiterals(t *testing.T) {
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	_, err := model.Classify("foo^bar")
	assert.ErrorIs(t, err, ErrMarkerLiteral)
	_, err = model.Classify("price$")
	assert.ErrorIs(t, err, ErrMarkerLiteral)
}

func TestLogProbFiniteAndNegative(t *testing.T) {
	model := buildModel(t, "aa\naa\nab\nab\n", "bb\nbb\n")
	for _, occ := range model.features {
		for _, lang := range []Language{Minority, English} {
			value := model.logProb(occ, lang)
			assert.False(t, math.IsNaN(value))
			assert.False(t, math.IsInf(value, 0))
			// c+1 < t+F holds for every entry here, so strictly negative
			assert.Less(t, value, 0.0)
		}
	}
}

func TestCustomTags(t *testing.T) {
	trainer := NewTrainer(Option{MinorityTag: "moh", EnglishTag: "en"})
	assert.Nil(t, trainer.Train(strings.NewReader("aa\naa\n"), Minority))
	model := trainer.Prune()
	assert.Equal(t, "moh", model.Tag(Minority))
	assert.Equal(t, "en", model.Tag(English))
	result, err := model.Classify("aa")
	assert.Nil(t, err)
	assert.Equal(t, "moh", result.Tag)
}

func TestClassifyBatch(t *testing.T) {
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	words := []string{"aa", "bb", "zz", "aa"}
	results, err := model.ClassifyBatch(context.Background(), words)
	assert.Nil(t, err)
	assert.Len(t, results, 4)
	assert.Equal(t, Minority, results[0].Language)
	assert.Equal(t, English, results[1].Language)
	assert.Equal(t, English, results[2].Language)
	assert.Equal(t, Minority, results[3].Language)
}

func TestClassifyBatchInvalidWord(t *testing.T) {
	model := buildModel(t, "aa\naa\n", "bb\nbb\n")
	_, err := model.ClassifyBatch(context.Background(), []string{"aa", "foo^bar"})
	assert.ErrorIs(t, err, ErrMarkerLiteral)
}
