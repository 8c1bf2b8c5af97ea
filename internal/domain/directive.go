package domain

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

const DefaultDirectiveMarker = "COUNCIL_CMD"

// Directive is one shell command requested by a model reply.
type Directive string

func (d Directive) String() string {
	return string(d)
}

// A word after an opening fence is a language tag only when a line break
// follows it; "```ls -la```" is a command.
var (
	fenceOpenPattern      = regexp.MustCompile("^```(?:[A-Za-z0-9_+-]+[ \t]*\r?\n|[ \t]*\r?\n?)")
	fenceClosePattern     = regexp.MustCompile("\r?\n?```$")
	statementSplitPattern = regexp.MustCompile(`;|\r?\n`)
	trailingPunctPattern  = regexp.MustCompile(`[.,]+$`)
)

// Extractor pulls marker-prefixed command blocks out of free-form model text.
// It never fails: text without a marker yields no directives.
type Extractor struct {
	opener     *regexp.Regexp
	terminator *regexp.Regexp
}

var defaultExtractor = NewExtractor(DefaultDirectiveMarker)

func NewExtractor(marker string) *Extractor {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		marker = DefaultDirectiveMarker
	}
	quoted := regexp.QuoteMeta(marker)

	return &Extractor{
		opener:     regexp.MustCompile(`(?i)` + quoted + `(?::|\s)\s*`),
		terminator: regexp.MustCompile(`(?i)\n\s*` + quoted),
	}
}

func ExtractDirectives(text string) []Directive {
	return defaultExtractor.Extract(text)
}

func (e *Extractor) Extract(text string) []Directive {
	var directives []Directive
	for _, block := range e.splitBlocks(text) {
		block = stripFence(block)
		block = stripInlineCode(block)
		fragments := lo.FilterMap(splitStatements(block), func(fragment string, _ int) (Directive, bool) {
			cleaned := cleanFragment(fragment)
			return Directive(cleaned), cleaned != ""
		})
		directives = append(directives, fragments...)
	}

	return directives
}

// splitBlocks returns the text following each marker. A block ends where a
// line starts with the marker again, or at the end of the text.
func (e *Extractor) splitBlocks(text string) []string {
	var blocks []string

	rest := text
	for {
		loc := e.opener.FindStringIndex(rest)
		if loc == nil {
			return blocks
		}

		body := rest[loc[1]:]
		end := len(body)
		if stop := e.terminator.FindStringIndex(body); stop != nil {
			end = stop[0]
		}

		blocks = append(blocks, body[:end])
		rest = body[end:]
	}
}

func stripFence(block string) string {
	block = strings.TrimSpace(block)
	block = fenceOpenPattern.ReplaceAllString(block, "")
	return fenceClosePattern.ReplaceAllString(block, "")
}

func stripInlineCode(block string) string {
	return strings.ReplaceAll(block, "`", "")
}

func splitStatements(block string) []string {
	return statementSplitPattern.Split(block, -1)
}

func cleanFragment(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	fragment = trailingPunctPattern.ReplaceAllString(fragment, "")
	return strings.TrimSpace(fragment)
}
