package quizgen

import (
	"hash/fnv"
	"math/rand/v2"
)

// shuffleStream is the second PCG word; the first comes from the
// question's content hash.
const shuffleStream = 0x9e3779b97f4a7c15

// Assemble builds a quiz from validated questions. Questions whose
// normalized text repeats an earlier one are dropped, the rest are kept
// in order up to requested, and each question's options are shuffled
// with a seed derived from its own content, so assembling the same input
// twice gives the same quiz. A short input yields a short quiz. The
// returned quiz shares no memory with questions.
func Assemble(questions []Question, requested int) *Quiz {
	quiz := &Quiz{Requested: requested, Questions: []Question{}}
	if requested <= 0 {
		return quiz
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if len(quiz.Questions) == requested {
			break
		}
		key := normalize(q.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		quiz.Questions = append(quiz.Questions, shuffleOptions(q))
	}
	return quiz
}

// shuffleOptions returns a copy of q with its options permuted. The
// answer is tracked by value, so it needs no adjustment.
func shuffleOptions(q Question) Question {
	opts := append([]string(nil), q.Options...)
	r := rand.New(rand.NewPCG(questionSeed(q), shuffleStream))
	r.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return Question{Text: q.Text, Options: opts, Answer: q.Answer}
}

// questionSeed hashes the normalized question and options with FNV-1a.
func questionSeed(q Question) uint64 {
	h := fnv.New64a()
	h.Write([]byte(normalize(q.Text)))
	for _, opt := range q.Options {
		h.Write([]byte{0})
		h.Write([]byte(normalize(opt)))
	}
	return h.Sum64()
}
