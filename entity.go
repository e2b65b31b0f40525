package langid

// Language identifies one of the two languages the model distinguishes.
type Language int

const (
	// Minority is the minority/Indigenous language side of the pair,
	// nêhiyawêwin (Plains Cree) by default.
	Minority Language = iota
	// English is the majority side of the pair.
	English
)

// String returns the default display tag. Models carry configurable tags,
// see Model.Tag.
func (l Language) String() string {
	if l == Minority {
		return defaultMinorityTag
	}
	return defaultEnglishTag
}

// Occurrence counts how many training words contained a bigram, split by
// language. It is incremented during training and read-only afterward.
type Occurrence struct {
	minority uint32
	english  uint32
}

func (o *Occurrence) increment(lang Language) {
	if lang == Minority {
		o.minority++
	} else {
		o.english++
	}
}

// Of returns the counter for one language.
func (o Occurrence) Of(lang Language) uint32 {
	if lang == Minority {
		return o.minority
	}
	return o.english
}

// Total returns the combined count across both languages.
func (o Occurrence) Total() uint32 {
	return o.minority + o.english
}

// Result is the outcome of classifying one word. The log probabilities are
// the raw log-likelihood sums; they are only ever compared against each
// other and are not normalized.
type Result struct {
	Word            string   `json:"word"`
	Language        Language `json:"-"`
	Tag             string   `json:"language"`
	MinorityLogProb float64  `json:"minority_logp"`
	EnglishLogProb  float64  `json:"english_logp"`
}
