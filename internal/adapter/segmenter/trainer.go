package segmenter

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/sirupsen/logrus"

	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

// Thresholds for the unsupervised boundary learner.
const (
	abbrevThreshold      = 0.3
	abbrevBackoff        = 5
	collocationThreshold = 7.88
	sentStarterThreshold = 30
	minCollocationFreq   = 1
)

// Orthographic context flags. The values match the Punkt storage format.
const (
	orthoBegUC = 1 << 1
	orthoMidUC = 1 << 2
	orthoUnkUC = 1 << 3
	orthoBegLC = 1 << 4
	orthoMidLC = 1 << 5
	orthoUnkLC = 1 << 6
)

// Trainer learns sentence boundary statistics from unlabeled text.
type Trainer struct {
	log *logrus.Entry
}

func NewTrainer(log *logrus.Entry) *Trainer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Trainer{log: log.WithField("stage", "train")}
}

// Train satisfies port.BoundaryTrainer.
func (t *Trainer) Train(corpus string) port.BoundaryModel {
	return t.Fit(corpus)
}

// Fit performs one-shot training on corpus. An empty corpus, or one without
// period-final tokens, yields a degenerate model that splits on
// sentence-final punctuation only.
func (t *Trainer) Fit(corpus string) *Model {
	log := t.log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger()).WithField("stage", "train")
	}

	tokens := trainingTokens(Normalize(corpus))
	if len(tokens) == 0 {
		log.Warn("empty training corpus, boundary model falls back to naive splitting")
		return &Model{params: newParams(), degenerate: true, fallback: NewNaive()}
	}

	st := newTrainState()
	st.countTypes(tokens)
	if st.periodTokens == 0 {
		log.WithField("tokens", st.total).Warn("training corpus has no period-final tokens, boundary model falls back to naive splitting")
		return &Model{
			params:     newParams(),
			stats:      TrainStats{Tokens: st.total},
			degenerate: true,
			fallback:   NewNaive(),
		}
	}
	st.findAbbrevTypes()
	st.annotateFirstPass(tokens)
	st.orthographyData(tokens)
	st.countPairs(tokens)
	st.findSentStarters()
	st.findCollocations()

	m := &Model{
		params: st.params,
		stats: TrainStats{
			Tokens:       st.total,
			PeriodTokens: st.periodTokens,
			SentBreaks:   st.sentBreaks,
		},
	}

	data, err := json.Marshal(st.params)
	if err == nil {
		var storage *sentences.Storage
		storage, err = sentences.LoadTraining(data)
		if err == nil {
			m.tokenizer = sentences.NewSentenceTokenizer(storage)
		}
	}
	if err != nil {
		log.WithError(err).Warn("failed to build boundary model, falling back to naive splitting")
		m.degenerate = true
		m.fallback = NewNaive()
	}

	log.WithFields(logrus.Fields{
		"tokens":        st.total,
		"abbreviations": len(st.params.AbbrevTypes),
		"starters":      len(st.params.SentStarters),
		"collocations":  len(st.params.Collocations),
	}).Debug("boundary model trained")

	return m
}

// Params is the learned parameter set. The JSON layout is the Punkt storage
// format.
type Params struct {
	AbbrevTypes  map[string]int `json:"AbbrevTypes"`
	Collocations map[string]int `json:"Collocations"`
	SentStarters map[string]int `json:"SentStarters"`
	OrthoContext map[string]int `json:"OrthoContext"`
}

func newParams() Params {
	return Params{
		AbbrevTypes:  map[string]int{},
		Collocations: map[string]int{},
		SentStarters: map[string]int{},
		OrthoContext: map[string]int{},
	}
}

type TrainStats struct {
	Tokens       int `json:"tokens"`
	PeriodTokens int `json:"period_tokens"`
	SentBreaks   int `json:"sentence_breaks"`
}

// Model is a trained, immutable sentence boundary model.
type Model struct {
	params     Params
	stats      TrainStats
	tokenizer  *sentences.DefaultSentenceTokenizer
	fallback   *Naive
	degenerate bool
}

// Segment splits text using the learned statistics. It may be called any
// number of times.
func (m *Model) Segment(text string) []domain.Sentence {
	if m.degenerate {
		return m.fallback.Segment(text)
	}
	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return locate(text, sentenceTexts(m.tokenizer.Tokenize(text)))
}

func (m *Model) Degenerate() bool {
	return m.degenerate
}

func (m *Model) Stats() TrainStats {
	return m.stats
}

// IsAbbreviation reports whether typ (lowercase, without the final period)
// was learned as an abbreviation.
func (m *Model) IsAbbreviation(typ string) bool {
	_, ok := m.params.AbbrevTypes[strings.ToLower(strings.TrimSuffix(typ, "."))]
	return ok
}

func (m *Model) Abbreviations() []string {
	return sortedKeys(m.params.AbbrevTypes)
}

func (m *Model) SentenceStarters() []string {
	return sortedKeys(m.params.SentStarters)
}

// Collocations returns learned word pairs as "first second".
func (m *Model) Collocations() []string {
	keys := sortedKeys(m.params.Collocations)
	for i, k := range keys {
		keys[i] = strings.Replace(k, ",", " ", 1)
	}
	return keys
}

func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Degenerate       bool       `json:"degenerate"`
		Stats            TrainStats `json:"stats"`
		Abbreviations    []string   `json:"abbreviations"`
		SentenceStarters []string   `json:"sentence_starters"`
		Collocations     []string   `json:"collocations"`
	}{
		Degenerate:       m.degenerate,
		Stats:            m.stats,
		Abbreviations:    m.Abbreviations(),
		SentenceStarters: m.SentenceStarters(),
		Collocations:     m.Collocations(),
	})
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type trainState struct {
	params        Params
	typeCounts    map[string]int
	starterCounts map[string]int
	collocCounts  map[[2]string]int
	total         int
	periodTokens  int
	sentBreaks    int
}

func newTrainState() *trainState {
	return &trainState{
		params:        newParams(),
		typeCounts:    map[string]int{},
		starterCounts: map[string]int{},
		collocCounts:  map[[2]string]int{},
	}
}

func (s *trainState) countTypes(tokens []*trainToken) {
	for _, tok := range tokens {
		s.typeCounts[tok.typ]++
		if tok.periodFinal {
			s.periodTokens++
		}
	}
	s.total = len(tokens)
}

// findAbbrevTypes scores every period-final type. A type that almost always
// carries a period, is short, and has internal periods scores high.
func (s *trainState) findAbbrevTypes() {
	types := make([]string, 0, len(s.typeCounts))
	for typ := range s.typeCounts {
		types = append(types, typ)
	}
	sort.Strings(types)

	for _, typ := range types {
		if !hasNonPunct(typ) || strings.HasPrefix(typ, numberType) {
			continue
		}
		if !strings.HasSuffix(typ, ".") {
			continue
		}
		typ = strings.TrimSuffix(typ, ".")
		if _, ok := s.params.AbbrevTypes[typ]; ok {
			continue
		}

		withPeriod := s.typeCounts[typ+"."]
		withoutPeriod := s.typeCounts[typ]
		periods := strings.Count(typ, ".") + 1
		nonPeriods := len(typ) - periods + 1

		ll := dunningLogLikelihood(withPeriod+withoutPeriod, s.periodTokens, withPeriod, s.total)
		fLength := math.Exp(-float64(nonPeriods))
		fPeriods := float64(periods)
		fPenalty := math.Pow(float64(nonPeriods), -float64(withoutPeriod))

		if ll*fLength*fPeriods*fPenalty >= abbrevThreshold {
			s.params.AbbrevTypes[typ] = 1
		}
	}
}

func (s *trainState) annotateFirstPass(tokens []*trainToken) {
	for _, tok := range tokens {
		switch {
		case tok.text == "." || tok.text == "?" || tok.text == "!":
			tok.sentBreak = true
		case tok.isEllipsis():
			tok.ellipsis = true
		case tok.periodFinal && !strings.HasSuffix(tok.text, ".."):
			base := strings.ToLower(strings.TrimSuffix(tok.text, "."))
			parts := strings.Split(base, "-")
			if s.isAbbrev(base) || s.isAbbrev(parts[len(parts)-1]) {
				tok.abbr = true
			} else {
				tok.sentBreak = true
			}
		}
		if tok.sentBreak {
			s.sentBreaks++
		}
	}
}

func (s *trainState) isAbbrev(typ string) bool {
	_, ok := s.params.AbbrevTypes[typ]
	return ok
}

func (s *trainState) orthographyData(tokens []*trainToken) {
	const (
		internal = iota
		initial
		unknown
	)
	context := internal
	for _, tok := range tokens {
		if tok.paraStart && context != unknown {
			context = initial
		}
		if tok.lineStart && context == internal {
			context = unknown
		}

		var flag int
		switch {
		case tok.firstUpper():
			flag = [...]int{orthoMidUC, orthoBegUC, orthoUnkUC}[context]
		case tok.firstLower():
			flag = [...]int{orthoMidLC, orthoBegLC, orthoUnkLC}[context]
		}
		if flag != 0 {
			s.params.OrthoContext[tok.typeNoSentPeriod()] |= flag
		}

		switch {
		case tok.sentBreak:
			if tok.isNumber() || tok.isInitial() {
				context = unknown
			} else {
				context = initial
			}
		case tok.ellipsis || tok.abbr:
			context = unknown
		default:
			context = internal
		}
	}
}

func (s *trainState) countPairs(tokens []*trainToken) {
	for i := 0; i+1 < len(tokens); i++ {
		cur, next := tokens[i], tokens[i+1]
		if !cur.periodFinal {
			continue
		}
		if s.isRareAbbrev(cur, next) {
			s.params.AbbrevTypes[cur.typeNoPeriod()] = 1
		}
		if cur.sentBreak && !(cur.isNumber() || cur.isInitial()) && next.isAlpha() {
			s.starterCounts[next.typ]++
		}
		if cur.sentBreak && (cur.isNumber() || cur.isInitial()) && cur.isNonPunct() && next.isNonPunct() {
			s.collocCounts[[2]string{cur.typeNoPeriod(), next.typeNoSentPeriod()}]++
		}
	}
}

// isRareAbbrev catches infrequent abbreviations that the likelihood test
// misses: a sentence break followed by internal punctuation, or by a word
// that is only ever capitalized at sentence starts.
func (s *trainState) isRareAbbrev(cur, next *trainToken) bool {
	if cur.abbr || !cur.sentBreak {
		return false
	}
	typ := cur.typeNoSentPeriod()
	count := s.typeCounts[typ] + s.typeCounts[strings.TrimSuffix(typ, ".")]
	if s.isAbbrev(typ) || count >= abbrevBackoff {
		return false
	}
	if next.text != "" && strings.ContainsAny(next.text[:1], ",:;") {
		return true
	}
	if next.firstLower() {
		ortho := s.params.OrthoContext[next.typeNoSentPeriod()]
		return ortho&orthoBegUC != 0 && ortho&orthoMidUC == 0
	}
	return false
}

func (s *trainState) findSentStarters() {
	if s.sentBreaks == 0 {
		return
	}
	for typ, atBreak := range s.starterCounts {
		if typ == "" {
			continue
		}
		typCount := s.typeCounts[typ] + s.typeCounts[typ+"."]
		if typCount < atBreak {
			continue
		}
		ll := collocationLogLikelihood(s.sentBreaks, typCount, atBreak, s.total)
		if ll >= sentStarterThreshold &&
			float64(s.total)/float64(s.sentBreaks) > float64(typCount)/float64(atBreak) {
			s.params.SentStarters[typ] = 1
		}
	}
}

func (s *trainState) findCollocations() {
	for pair, count := range s.collocCounts {
		first, second := pair[0], pair[1]
		if _, ok := s.params.SentStarters[second]; ok {
			continue
		}
		firstCount := s.typeCounts[first] + s.typeCounts[first+"."]
		secondCount := s.typeCounts[second] + s.typeCounts[second+"."]
		if firstCount <= 1 || secondCount <= 1 {
			continue
		}
		if count <= minCollocationFreq || count > min(firstCount, secondCount) {
			continue
		}
		ll := collocationLogLikelihood(firstCount, secondCount, count, s.total)
		if ll >= collocationThreshold &&
			float64(s.total)/float64(firstCount) > float64(secondCount)/float64(count) {
			s.params.Collocations[first+","+second] = 1
		}
	}
}

// dunningLogLikelihood compares the chance of countA tokens carrying a
// period against the corpus period rate.
func dunningLogLikelihood(countA, countB, countAB, n int) float64 {
	p1 := float64(countB) / float64(n)
	p2 := 0.99
	a, ab := float64(countA), float64(countAB)

	null := ab*safeLog(p1) + (a-ab)*safeLog(1-p1)
	alt := ab*safeLog(p2) + (a-ab)*safeLog(1-p2)
	return -2 * (null - alt)
}

func collocationLogLikelihood(countA, countB, countAB, n int) float64 {
	a, b, ab, nn := float64(countA), float64(countB), float64(countAB), float64(n)
	p := b / nn
	p1 := ab / a
	var p2 float64
	if nn != a {
		p2 = (b - ab) / (nn - a)
	}

	s1 := ab*safeLog(p) + (a-ab)*safeLog(1-p)
	s2 := (b-ab)*safeLog(p) + (nn-a-b+ab)*safeLog(1-p)
	var s3, s4 float64
	if countA != countAB {
		s3 = ab*safeLog(p1) + (a-ab)*safeLog(1-p1)
	}
	if countB != countAB {
		s4 = (b-ab)*safeLog(p2) + (nn-a-b+ab)*safeLog(1-p2)
	}
	return -2 * (s1 + s2 - s3 - s4)
}

func safeLog(x float64) float64 {
	if x <= 0 {
		return math.Log(1e-300)
	}
	return math.Log(x)
}
