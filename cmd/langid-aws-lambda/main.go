package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	_ "gocloud.dev/blob/fileblob"

	"github.com/future-architect/langid"
)

type query struct {
	Words []string `json:"words"`
}

type response struct {
	Error   string          `json:"error,omitempty"`
	Results []langid.Result `json:"results,omitempty"`
}

var (
	minorityList string
	englishList  string
	bucketURL    string

	model     *langid.Model
	initModel sync.Once
	initErr   error
)

func init() {
	minorityList = os.Getenv("LANGID_MINORITY_LIST")
	englishList = os.Getenv("LANGID_ENGLISH_LIST")
	bucketURL = os.Getenv("LANGID_BUCKET_URL")
}

func errorResult(status int, err string) events.APIGatewayProxyResponse {
	b, _ := json.Marshal(&response{Error: err})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(b),
	}
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	initModel.Do(func() {
		model, initErr = langid.New(ctx, minorityList, englishList, langid.Option{
			BucketURL: bucketURL,
		})
	})
	if initErr != nil {
		return errorResult(500, fmt.Sprintf("can't build language model: %v", initErr)), nil
	}

	var q query
	json.Unmarshal([]byte(request.Body), &q)
	for key, values := range request.MultiValueQueryStringParameters {
		if key == "word" || key == "words" {
			q.Words = append(q.Words, values...)
		}
	}
	if len(q.Words) == 0 {
		return errorResult(400, "no words to classify"), nil
	}

	results, err := model.ClassifyBatch(ctx, q.Words)
	if err != nil {
		return errorResult(400, fmt.Sprintf("classify error: %v", err)), nil
	}
	b, _ := json.Marshal(&response{Results: results})
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       string(b),
	}, nil
}

func main() {
	lambda.Start(handler)
}
