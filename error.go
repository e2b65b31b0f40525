package langid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTrainingFinalized is returned by Train once Prune has consumed the
	// trainer's feature table.
	ErrTrainingFinalized = errors.New("training is already finalized")
	// ErrMarkerLiteral is returned when input contains a literal '^' or '$',
	// which are reserved for the word boundary markers in diagnostics.
	ErrMarkerLiteral = errors.New("reserved marker character '^' or '$' in input")
)

type CombinedError struct {
	Message string
	Errors  []error
}

func (c *CombinedError) append(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *CombinedError) appendIfError(err error) {
	if err != nil {
		c.append(err)
	}
}

func (c CombinedError) Error() string {
	var result []string
	for _, err := range c.Errors {
		result = append(result, err.Error())
	}
	return fmt.Sprintf("%s: %s", c.Message, strings.Join(result, ", "))
}
