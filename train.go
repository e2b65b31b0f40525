package langid

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"gocloud.dev/blob"

	"github.com/future-architect/langid/nlp"
)

// Train reads a word list line by line and, for every distinct bigram of
// each word, increments that bigram's counter for lang. A bigram repeated
// inside one word still counts once: a word is a bag of distinct features.
// Training the same language twice accumulates further counts.
func (t *Trainer) Train(r io.Reader, lang Language) error {
	if t.features == nil {
		return ErrTrainingFinalized
	}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := nlp.Normalize(scanner.Text())
		if nlp.HasMarkerLiteral(word) {
			return fmt.Errorf("line %d (%q): %w", lineNo, word, ErrMarkerLiteral)
		}
		for bigram := range nlp.BigramsOf(word) {
			occ, ok := t.features[bigram]
			if !ok {
				occ = &Occurrence{}
				t.features[bigram] = occ
			}
			occ.increment(lang)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("can't read word list: %w", err)
	}
	return nil
}

// TrainFile trains from a named word list. The name is a local file path, or
// a key inside the configured bucket when Option.BucketURL or
// Option.BucketOpener is set.
func (t *Trainer) TrainFile(ctx context.Context, name string, lang Language) error {
	r, err := t.openWordList(ctx, name)
	if err != nil {
		return fmt.Errorf("can't open word list %s: %w", name, err)
	}
	defer r.Close()
	if err := t.Train(r, lang); err != nil {
		return fmt.Errorf("word list %s: %w", name, err)
	}
	return nil
}

func (t *Trainer) openWordList(ctx context.Context, name string) (io.ReadCloser, error) {
	if t.option.BucketOpener == nil {
		return os.Open(name)
	}
	bucket, err := t.bucket(ctx)
	if err != nil {
		return nil, err
	}
	return bucket.NewReader(ctx, name, nil)
}

func (t *Trainer) bucket(ctx context.Context) (*blob.Bucket, error) {
	if t.wordListBucket == nil {
		bucket, err := t.option.BucketOpener(ctx, t.option)
		if err != nil {
			return nil, err
		}
		t.wordListBucket = bucket
	}
	return t.wordListBucket, nil
}
