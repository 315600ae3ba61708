package generator

import (
	"fmt"
	"log"
	"sort"
	"time"

	"lexiquiz/internal/model"
)

const glossDifficulties = 3

// GenerateGloss produces definition-matching questions: the prompt is an
// English gloss, the options are lemmas in the target language. Distractors
// are random draws from the target-language universe at every tier (the
// gloss task has no semantic ladder). One question per unused gloss text
// per language pair.
func (g *Generator) GenerateGloss(mode Mode, targetPerPair int) []model.Question {
	fromLangs, toLangs := languagePairs(mode)

	valid := g.collectGlossEntries(fromLangs, toLangs)
	if len(valid) == 0 {
		log.Printf("[Generator] No valid gloss entries for mode %s", mode)
		return nil
	}

	perDifficulty := targetPerPair / glossDifficulties
	generationTime := time.Now().UTC().Format(time.RFC3339)

	pairs := make([]string, 0, len(valid))
	for pair := range valid {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	var questions []model.Question
	qid := 0

	for _, pair := range pairs {
		entries := valid[pair]
		fromCode, toCode := splitPair(pair)

		g.rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})

		usedGlosses := stringSet{}

		for difficulty := 1; difficulty <= glossDifficulties; difficulty++ {
			generated := 0
			for _, entry := range entries {
				if generated >= perDifficulty {
					break
				}

				gloss, ok := entry.Glossary[fromCode]
				if !ok || gloss.Text == "" || usedGlosses.has(gloss.Text) {
					continue
				}

				correct := entry.Translations[toCode].Lemma
				candidates := g.lemmaSet(toCode).clone()
				candidates.remove(correct)
				if len(candidates) < g.minDistractors {
					continue
				}

				distractors := g.sample(candidates, g.nChoices-1)
				if len(distractors) < g.nChoices-1 {
					continue
				}

				options := append(distractors, correct)
				g.rng.Shuffle(len(options), func(i, j int) {
					options[i], options[j] = options[j], options[i]
				})

				prompt, promptLang := glossPrompt(gloss.Text, fromCode, toCode)
				_, fromTier, _ := model.LangInfo(fromCode)
				_, toTier, _ := model.LangInfo(toCode)

				questions = append(questions, model.Question{
					ID:          fmt.Sprintf("gloss_%d_%s_to_%s_diff%d", qid, fromCode, toCode, difficulty),
					Prompt:      prompt,
					Options:     options,
					AnswerIndex: indexOf(options, correct),
					Metadata: model.QuestionMetadata{
						ResourcePair:     fmt.Sprintf("%s_to_%s", fromTier, toTier),
						PromptLang:       promptLang,
						FromLang:         fromCode,
						ToLang:           toCode,
						Difficulty:       difficulty,
						DistractorType:   "random",
						GenerationTime:   generationTime,
						SynsetID:         entry.SynsetID,
						MultilingualMode: string(mode),
					},
				})

				usedGlosses.add(gloss.Text)
				qid++
				generated++
			}
		}
	}

	log.Printf("[Generator] Generated %d gloss questions for %d language pairs", len(questions), len(pairs))
	return questions
}

// collectGlossEntries groups entries with a usable gloss by language pair.
func (g *Generator) collectGlossEntries(fromLangs, toLangs []string) map[string][]*model.Entry {
	valid := make(map[string][]*model.Entry)

	for i := range g.data {
		entry := &g.data[i]
		if len(entry.Glossary) == 0 {
			continue
		}

		for _, fromCode := range fromLangs {
			if _, ok := entry.Glossary[fromCode]; !ok {
				continue
			}
			for _, toCode := range toLangs {
				if _, ok := entry.Translations[toCode]; !ok {
					continue
				}
				if fromCode == toCode && fromCode != "en" {
					continue
				}
				pair := fmt.Sprintf("%s_to_%s", fromCode, toCode)
				valid[pair] = append(valid[pair], entry)
			}
		}
	}
	return valid
}

func glossPrompt(glossText, fromCode, toCode string) (string, string) {
	fromName, _, _ := model.LangInfo(fromCode)
	toName, _, _ := model.LangInfo(toCode)

	if fromCode == toCode {
		return fmt.Sprintf("Definition: %s\n\nWhich word matches this definition?", glossText), "en"
	}
	return fmt.Sprintf("Definition (%s): %s\n\nChoose the correct word in %s:", fromName, glossText, toName), "en"
}
