package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
	_ "gocloud.dev/blob/fileblob"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/future-architect/langid"
)

var (
	minorityList = kingpin.Flag("minority-list", "Minority-language word list").Required().String()
	englishList  = kingpin.Flag("english-list", "English word list").Required().String()
	minorityTag  = kingpin.Flag("minority-tag", "Display tag for the minority language").Default("crk").String()
	englishTag   = kingpin.Flag("english-tag", "Display tag for English").Default("eng").String()
	bucketURL    = kingpin.Flag("bucket", "gocloud.dev bucket URL that word list names are resolved against").String()
	verbose      = kingpin.Flag("verbose", "Show per-language probabilities").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	ctx := context.Background()

	model, err := langid.New(ctx, *minorityList, *englishList, langid.Option{
		MinorityTag: *minorityTag,
		EnglishTag:  *englishTag,
		BucketURL:   *bucketURL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		result, err := model.Classify(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping: %s\n", err.Error())
			continue
		}
		if *verbose {
			fmt.Printf("  P(%s|%s) = %v\n", *minorityTag, result.Word, math.Exp(result.MinorityLogProb))
			fmt.Printf("  P(%s|%s) = %v\n", *englishTag, result.Word, math.Exp(result.EnglishLogProb))
		}
		if result.Language == langid.Minority {
			color.Green("%s: %s", result.Word, result.Tag)
		} else {
			color.Cyan("%s: %s", result.Word, result.Tag)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %s\n", err.Error())
		os.Exit(1)
	}
}
