package generator

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"lexiquiz/internal/model"
)

// Mode selects which language pairs a generation run covers.
type Mode string

const (
	ModeEnToHigh      Mode = "en_to_high"
	ModeEnToMedium    Mode = "en_to_medium"
	ModeEnToLow       Mode = "en_to_low"
	ModeEnToAll       Mode = "en_to_all"
	ModeMonolingualEN Mode = "monolingual_en"
	ModeAll           Mode = "all"
)

// Task pairs a task name with the relation list it quizzes.
type Task struct {
	Type          string
	RelationField string
}

var (
	TaskHypernymy = Task{Type: "hypernymy", RelationField: "hypernyms"}
	TaskMeronymy  = Task{Type: "meronymy", RelationField: "meronyms"}
)

const numDifficulties = 5

var (
	errTooFewCandidates    = errors.New("candidate pool smaller than min distractors")
	errDistractorShortfall = errors.New("could not assemble a full distractor set")
)

// Options configures a Generator.
type Options struct {
	MinDistractors int
	NChoices       int
	Seed           int64
}

// Generator assembles balanced multiple-choice questions from an enriched
// node pool. It is stateless across GenerateTask calls apart from its
// random source; within one call the only carried state is the
// per-language-pair used-prompt-word set and the question id counter.
type Generator struct {
	data           []model.Entry
	minDistractors int
	nChoices       int
	rng            *rand.Rand

	synsetToEntry map[string]*model.Entry
	lemmasByLang  map[string]stringSet
}

// New builds a generator with its lookup indexes over the pool.
func New(data []model.Entry, opts Options) *Generator {
	if opts.MinDistractors <= 0 {
		opts.MinDistractors = 3
	}
	if opts.NChoices <= 0 {
		opts.NChoices = 4
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := &Generator{
		data:           data,
		minDistractors: opts.MinDistractors,
		nChoices:       opts.NChoices,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		synsetToEntry:  make(map[string]*model.Entry, len(data)),
		lemmasByLang:   make(map[string]stringSet),
	}

	for i := range data {
		entry := &data[i]
		if entry.SynsetID != "" {
			g.synsetToEntry[entry.SynsetID] = entry
		}
		for code, trans := range entry.Translations {
			g.lemmaSet(code).add(trans.Lemma)
		}
		for _, field := range []string{"hypernyms", "hyponyms", "meronyms", "cohyponyms"} {
			for _, rel := range entry.Relatives(field) {
				for code, trans := range rel.Translations {
					g.lemmaSet(code).add(trans.Lemma)
				}
			}
		}
	}
	return g
}

func (g *Generator) lemmaSet(lang string) stringSet {
	set, ok := g.lemmasByLang[lang]
	if !ok {
		set = stringSet{}
		g.lemmasByLang[lang] = set
	}
	return set
}

// languagePairs resolves the source and target language lists for a mode.
func languagePairs(mode Mode) (from, to []string) {
	switch mode {
	case ModeEnToHigh:
		for _, code := range model.TierLanguages(model.TierHigh) {
			if code != "en" {
				to = append(to, code)
			}
		}
		return []string{"en"}, to
	case ModeEnToMedium:
		return []string{"en"}, model.TierLanguages(model.TierMedium)
	case ModeEnToLow:
		return []string{"en"}, model.TierLanguages(model.TierLow)
	case ModeEnToAll:
		for _, code := range model.AllLanguages() {
			if code != "en" {
				to = append(to, code)
			}
		}
		return []string{"en"}, to
	case ModeMonolingualEN:
		return []string{"en"}, []string{"en"}
	default: // ModeAll
		all := model.AllLanguages()
		return all, all
	}
}

// eligible is one (prompt entry, usable related entries) pair for a
// specific language pair.
type eligible struct {
	entry   *model.Entry
	related []model.Relative
}

// collectValidEntries groups eligible entries by "from_to" language pair.
func (g *Generator) collectValidEntries(relationField string, fromLangs, toLangs []string) map[string][]eligible {
	valid := make(map[string][]eligible)

	for i := range g.data {
		entry := &g.data[i]
		relatives := entry.Relatives(relationField)
		if len(relatives) == 0 {
			continue
		}

		for _, fromCode := range fromLangs {
			if _, ok := entry.Translations[fromCode]; !ok {
				continue
			}

			for _, toCode := range toLangs {
				if fromCode == toCode && fromCode != "en" {
					continue
				}

				var related []model.Relative
				for _, rel := range relatives {
					if _, ok := rel.Translations[toCode]; ok {
						related = append(related, rel)
					}
				}
				if len(related) == 0 {
					continue
				}

				pair := fmt.Sprintf("%s_to_%s", fromCode, toCode)
				valid[pair] = append(valid[pair], eligible{entry: entry, related: related})
			}
		}
	}
	return valid
}

// GenerateTask produces a balanced question batch for one task and mode:
// per language pair, up to targetPerPair questions split across the five
// difficulty tiers (remainder to the lowest tiers), with no prompt word
// reused within a pair.
func (g *Generator) GenerateTask(task Task, mode Mode, targetPerPair int) []model.Question {
	fromLangs, toLangs := languagePairs(mode)

	valid := g.collectValidEntries(task.RelationField, fromLangs, toLangs)
	if len(valid) == 0 {
		log.Printf("[Generator] No valid entries for %s with mode %s", task.Type, mode)
		return nil
	}

	perDifficulty := targetPerPair / numDifficulties
	remainder := targetPerPair % numDifficulties
	generationTime := time.Now().UTC().Format(time.RFC3339)

	pairs := make([]string, 0, len(valid))
	for pair := range valid {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	var questions []model.Question
	qid := 0
	skipped := 0

	for _, pair := range pairs {
		entries := valid[pair]
		fromCode, toCode := splitPair(pair)

		g.rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})

		usedPrompts := stringSet{}

		for difficulty := 1; difficulty <= numDifficulties; difficulty++ {
			target := perDifficulty
			if difficulty <= remainder {
				target++
			}

			generated := 0
			for idx := 0; generated < target && idx < len(entries); idx++ {
				candidate := entries[idx]
				promptWord := candidate.entry.Translations[fromCode].Lemma
				if usedPrompts.has(promptWord) {
					continue
				}

				question, err := g.createQuestion(candidate, fromCode, toCode, task, difficulty, qid, generationTime, string(mode))
				if err != nil {
					skipped++
					continue
				}

				questions = append(questions, *question)
				usedPrompts.add(promptWord)
				qid++
				generated++
			}
		}
	}

	log.Printf("[Generator] Generated %d %s questions for %d language pairs (%d attempts skipped)",
		len(questions), task.Type, len(pairs), skipped)
	return questions
}

// createQuestion builds a single record, or reports why the attempt was
// abandoned. Abandoned attempts are never retried.
func (g *Generator) createQuestion(cand eligible, fromCode, toCode string, task Task, difficulty, qid int, generationTime, mode string) (*model.Question, error) {
	promptWord := cand.entry.Translations[fromCode].Lemma
	related := cand.related[g.rng.Intn(len(cand.related))]
	correct := related.Translations[toCode].Lemma

	allCandidates := g.lemmaSet(toCode).clone()
	allCandidates.remove(correct)
	if len(allCandidates) < g.minDistractors {
		return nil, errTooFewCandidates
	}

	distractors, distractorType, err := g.distractors(correct, allCandidates, toCode, cand.entry, difficulty)
	if err != nil {
		return nil, err
	}

	options := append(distractors, correct)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	answerIndex := indexOf(options, correct)

	prompt, promptLang := g.promptText(task.Type, fromCode, toCode, promptWord)

	_, fromTier, _ := model.LangInfo(fromCode)
	_, toTier, _ := model.LangInfo(toCode)

	return &model.Question{
		ID:          fmt.Sprintf("%s_%d_%s_to_%s_diff%d", task.Type, qid, fromCode, toCode, difficulty),
		Prompt:      prompt,
		Options:     options,
		AnswerIndex: answerIndex,
		Metadata: model.QuestionMetadata{
			ResourcePair:     fmt.Sprintf("%s_to_%s", fromTier, toTier),
			PromptLang:       promptLang,
			FromLang:         fromCode,
			ToLang:           toCode,
			Difficulty:       difficulty,
			DistractorType:   distractorType,
			GenerationTime:   generationTime,
			SynsetID:         cand.entry.SynsetID,
			MultilingualMode: mode,
		},
	}, nil
}

var relationPhrases = map[string]string{
	"hypernymy": "a hypernym (broader category)",
	"meronymy":  "a meronym (part, component, or member)",
}

// promptText renders the (always English) question prompt.
func (g *Generator) promptText(taskType, fromCode, toCode, promptWord string) (string, string) {
	fromName, _, _ := model.LangInfo(fromCode)
	toName, _, _ := model.LangInfo(toCode)

	phrase, ok := relationPhrases[taskType]
	if !ok {
		phrase = "a semantic relation"
	}

	prompt := fmt.Sprintf("Which of the following is %s of the %s word %q? (Options in %s.)",
		phrase, fromName, promptWord, toName)
	return prompt, "en"
}

func splitPair(pair string) (from, to string) {
	for i := 0; i+4 <= len(pair); i++ {
		if pair[i:i+4] == "_to_" {
			return pair[:i], pair[i+4:]
		}
	}
	return pair, ""
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
