// Package prompts builds the natural-language instructions sent to the
// generation capability. Templates are embedded per language; the question
// template and the reply parser share the same section markers.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Carlo1027/first-chatbot/internal/model"
)

//go:embed templates/*.txt
var templateFS embed.FS

// Lang is a prompt language code.
type Lang string

const (
	LangEnglish Lang = "en"
	LangSpanish Lang = "es"
)

// Normalize maps an arbitrary language tag to a supported prompt language,
// falling back to English.
func Normalize(lang string) Lang {
	if strings.HasPrefix(strings.ToLower(lang), "es") {
		return LangSpanish
	}
	return LangEnglish
}

// Layout holds the literal section markers the question template asks the
// model to emit and the parser looks for, in order.
type Layout struct {
	Question string
	Options  string
	Answer   string
}

var layouts = map[Lang]Layout{
	LangEnglish: {Question: "Question:", Options: "Options:", Answer: "Correct answer:"},
	LangSpanish: {Question: "Pregunta:", Options: "Opciones:", Answer: "Respuesta correcta:"},
}

// LayoutFor returns the section markers used for the given language.
func LayoutFor(lang Lang) Layout {
	return layouts[Normalize(string(lang))]
}

var difficultyLabels = map[Lang]map[model.Difficulty]string{
	LangEnglish: {
		model.DifficultyBasic:        "basic",
		model.DifficultyIntermediate: "intermediate",
		model.DifficultyAdvanced:     "advanced",
	},
	LangSpanish: {
		model.DifficultyBasic:        "básico",
		model.DifficultyIntermediate: "intermedio",
		model.DifficultyAdvanced:     "avanzado",
	},
}

// DifficultyLabel returns the localized name of a difficulty level.
func DifficultyLabel(lang Lang, d model.Difficulty) string {
	if label, ok := difficultyLabels[Normalize(string(lang))][d]; ok {
		return label
	}
	return string(d)
}

var (
	loadOnce  sync.Once
	loadErr   error
	templates map[string]*template.Template
)

var templateNames = []string{"question", "feedback", "explain", "exercise"}

func load() error {
	loadOnce.Do(func() {
		templates = make(map[string]*template.Template)
		for _, name := range templateNames {
			for _, lang := range []Lang{LangEnglish, LangSpanish} {
				file := fmt.Sprintf("templates/%s_%s.txt", name, lang)
				content, err := templateFS.ReadFile(file)
				if err != nil {
					loadErr = fmt.Errorf("read prompt file %s: %w", file, err)
					return
				}
				tmpl, err := template.New(name).Parse(string(content))
				if err != nil {
					loadErr = fmt.Errorf("parse prompt template %s: %w", file, err)
					return
				}
				templates[name+"_"+string(lang)] = tmpl
			}
		}
	})
	return loadErr
}

func execute(name string, lang Lang, data any) (string, error) {
	if err := load(); err != nil {
		return "", err
	}
	tmpl, ok := templates[name+"_"+string(Normalize(string(lang)))]
	if !ok {
		return "", fmt.Errorf("no %s template for language %q", name, lang)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

// questionData feeds the multiple-choice question template.
type questionData struct {
	Topic      string
	Difficulty string
	Exclusions []string
	Layout     Layout
}

// BuildQuestion builds the instruction for one multiple-choice exam item.
// previous lists the prompts of all already-accepted questions; when
// non-empty a do-not-repeat block is appended.
func BuildQuestion(lang Lang, topic string, difficulty model.Difficulty, previous []string) (string, error) {
	return execute("question", lang, questionData{
		Topic:      topic,
		Difficulty: DifficultyLabel(lang, difficulty),
		Exclusions: previous,
		Layout:     LayoutFor(lang),
	})
}

// feedbackData feeds the remediation feedback template.
type feedbackData struct {
	Problem string
	Answer  string
}

// BuildFeedback builds the instruction that evaluates a student answer and
// requests a verdict, error analysis, and full worked solution.
func BuildFeedback(lang Lang, problem, studentAnswer string) (string, error) {
	return execute("feedback", lang, feedbackData{Problem: problem, Answer: studentAnswer})
}

// BuildExplain builds the instruction for a concept explanation.
func BuildExplain(lang Lang, topic string) (string, error) {
	return execute("explain", lang, struct{ Topic string }{topic})
}

// exerciseData feeds the free-text exercise template.
type exerciseData struct {
	Topic      string
	Difficulty string
}

// BuildExercise builds the instruction for a free-text practice problem
// without its solution.
func BuildExercise(lang Lang, topic string, difficulty model.Difficulty) (string, error) {
	return execute("exercise", lang, exerciseData{
		Topic:      topic,
		Difficulty: DifficultyLabel(lang, difficulty),
	})
}
