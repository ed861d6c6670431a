package cardimport

import (
	"bufio"
	"io"
	"strings"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	separator      = "---"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
)

// HasMarkers metnin en az bir Q:/A: çifti içerip içermediğini söyler.
func HasMarkers(text string) bool {
	var q, a bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		q = q || strings.HasPrefix(line, questionPrefix)
		a = a || strings.HasPrefix(line, answerPrefix)
	}
	return q && a
}

// ParseText "Q:" ve "A:" ile başlayan blokları kartlara çevirir. Bloklar birden
// fazla satır sürebilir; "---" satırı kartı kapatır. Cevabı olmayan sorular atlanır.
func ParseText(r io.Reader) ([]Draft, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		drafts  []Draft
		current Draft
		block   []string
		st      = seeking
	)

	flushBlock := func() {
		if len(block) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(block, "\n"))
		switch st {
		case readingQuestion:
			current.Question = content
		case readingAnswer:
			current.Answer = content
		}
		block = nil
	}

	finish := func() {
		flushBlock()
		if current.Question != "" && current.Answer != "" {
			drafts = append(drafts, current)
		}
		current = Draft{}
		st = seeking
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == separator:
			finish()
		case strings.HasPrefix(trimmed, questionPrefix):
			if st != seeking {
				finish()
			}
			st = readingQuestion
			block = append(block, strings.TrimSpace(trimmed[len(questionPrefix):]))
		case strings.HasPrefix(trimmed, answerPrefix):
			flushBlock()
			st = readingAnswer
			block = append(block, strings.TrimSpace(trimmed[len(answerPrefix):]))
		case st != seeking:
			block = append(block, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	finish()

	return drafts, nil
}
