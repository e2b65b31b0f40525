// Package langid tells which of two languages a word belongs to, using a
// character-bigram model trained from two word lists. The model moves
// through three phases: a Trainer accumulates bigram counts from the word
// lists, Prune drops low-evidence bigrams and produces a read-only Model,
// and the Model answers classification queries.
package langid

import (
	"context"
	"os"
	"sync"

	"gocloud.dev/blob"

	"github.com/future-architect/langid/nlp"
)

const (
	defaultMinorityTag = "crk"
	defaultEnglishTag  = "eng"
)

type Option struct {
	// MinorityTag and EnglishTag are the display tags attached to results.
	MinorityTag string
	EnglishTag  string
	// BucketURL selects a gocloud.dev bucket (file://, mem://, s3://...)
	// that word-list names are resolved against. Empty means the local
	// filesystem.
	BucketURL string
	// BucketOpener overrides how the word-list bucket is opened. Mostly
	// useful for tests.
	BucketOpener func(ctx context.Context, opt Option) (*blob.Bucket, error)
	// BatchConcurrency limits the number of parallel workers used by
	// Model.ClassifyBatch.
	BatchConcurrency int
}

func DefaultBucketOpener(ctx context.Context, opt Option) (*blob.Bucket, error) {
	return blob.OpenBucket(ctx, opt.BucketURL)
}

func initOpt(opt ...Option) Option {
	var option Option
	if len(opt) > 0 {
		option = opt[0]
	}
	if option.MinorityTag == "" {
		option.MinorityTag = os.Getenv("LANGID_MINORITY_TAG")
	}
	if option.MinorityTag == "" {
		option.MinorityTag = defaultMinorityTag
	}
	if option.EnglishTag == "" {
		option.EnglishTag = os.Getenv("LANGID_ENGLISH_TAG")
	}
	if option.EnglishTag == "" {
		option.EnglishTag = defaultEnglishTag
	}
	if option.BucketURL == "" {
		option.BucketURL = os.Getenv("LANGID_BUCKET_URL")
	}
	if option.BucketOpener == nil && option.BucketURL != "" {
		option.BucketOpener = DefaultBucketOpener
	}
	if option.BatchConcurrency == 0 {
		option.BatchConcurrency = 4
	}
	return option
}

// Trainer accumulates per-language bigram counts. It is not safe for
// concurrent use; training runs once, synchronously, before any
// classification.
type Trainer struct {
	features       map[nlp.Bigram]*Occurrence
	option         Option
	wordListBucket *blob.Bucket
	close          sync.Once
}

// NewTrainer creates an empty trainer.
func NewTrainer(opt ...Option) *Trainer {
	return &Trainer{
		features: make(map[nlp.Bigram]*Occurrence),
		option:   initOpt(opt...),
	}
}

// Close releases the word-list bucket, if one was opened.
func (t *Trainer) Close() (err error) {
	t.close.Do(func() {
		if t.wordListBucket != nil {
			err = t.wordListBucket.Close()
		}
	})
	return
}

// Prune drops every bigram witnessed only once across both languages and
// returns the finished read-only model. Singleton bigrams carry almost no
// signal and inflate the smoothing denominator. The trainer gives up its
// feature table: further Train calls fail with ErrTrainingFinalized.
func (t *Trainer) Prune() *Model {
	features := t.features
	t.features = nil
	for bigram, occ := range features {
		if occ.Total() <= 1 {
			delete(features, bigram)
		}
	}
	return &Model{features: features, option: t.option}
}

// New trains a model from the two word lists, prunes it, and returns the
// ready-to-query model. Either list failing to load is fatal; both failures
// are reported together.
func New(ctx context.Context, minorityList, englishList string, opt ...Option) (*Model, error) {
	trainer := NewTrainer(opt...)
	defer trainer.Close()
	combined := &CombinedError{Message: "can't build language model"}
	combined.appendIfError(trainer.TrainFile(ctx, minorityList, Minority))
	combined.appendIfError(trainer.TrainFile(ctx, englishList, English))
	if len(combined.Errors) > 0 {
		return nil, combined
	}
	return trainer.Prune(), nil
}
