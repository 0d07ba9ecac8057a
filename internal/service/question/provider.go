// Package question serves interview questions from a fixed list.
package question

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestionsYAML []byte

type Question struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
}

type questionFile struct {
	Questions []Question `yaml:"questions"`
}

type provider struct {
	questions []Question
	intN      func(n int) int
}

type Provider interface {
	// Random returns one question chosen uniformly at random.
	Random() Question
}

// Option configures a Provider.
type Option func(*provider)

// WithIntN replaces the random index source. fn must return a value in [0, n).
func WithIntN(fn func(n int) int) Option {
	return func(p *provider) {
		p.intN = fn
	}
}

// NewProvider validates questions and returns a Provider over a private copy.
func NewProvider(questions []Question, opts ...Option) (Provider, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	p := &provider{
		questions: append([]Question(nil), questions...),
		intN:      rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *provider) Random() Question {
	return p.questions[p.intN(len(p.questions))]
}

// Validate checks that the list is non-empty, ids run 1..N without
// duplicates and no text is blank.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("question list is empty")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if q.ID < 1 || q.ID > len(questions) {
			return fmt.Errorf("question %d: id %d out of range 1..%d", i+1, q.ID, len(questions))
		}
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %d", i+1, q.ID)
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: empty text", q.ID)
		}
	}
	return nil
}

// LoadQuestions decodes and validates a YAML question list.
func LoadQuestions(r io.Reader) ([]Question, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file questionFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("question list is empty")
		}
		return nil, fmt.Errorf("decoding questions: %w", err)
	}

	if err := Validate(file.Questions); err != nil {
		return nil, err
	}
	return file.Questions, nil
}

// LoadFile reads a YAML question list from path.
func LoadFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening questions file: %w", err)
	}
	defer f.Close()

	questions, err := LoadQuestions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}

// DefaultQuestions returns the built-in question list.
func DefaultQuestions() []Question {
	questions, err := LoadQuestions(bytes.NewReader(defaultQuestionsYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded questions.yaml is invalid: %v", err))
	}
	return questions
}
