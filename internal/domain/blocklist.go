package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type BlockRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Blocklist is a static pattern policy applied to directives before they run.
// Matching is by pattern only, so a blocked word inside a quoted argument still
// blocks the directive.
type Blocklist struct {
	rules []BlockRule
}

func defaultBlockRules() []BlockRule {
	return []BlockRule{
		{Name: "destructive-fs", Pattern: regexp.MustCompile(`(?i)\b(rm|mkfs|dd)\b`)},
		{Name: "power", Pattern: regexp.MustCompile(`(?i)\b(reboot|shutdown)\b`)},
		{Name: "permissions", Pattern: regexp.MustCompile(`(?i)\b(chown|chmod\s+777)\b`)},
		{Name: "redirection", Pattern: regexp.MustCompile(`\b:?>\b`)},
		{Name: "bare-redirection", Pattern: regexp.MustCompile(`^\s*:?>`)},
	}
}

func DefaultBlocklist() *Blocklist {
	return &Blocklist{rules: defaultBlockRules()}
}

// NewBlocklist returns the default rules plus one rule per extra pattern.
func NewBlocklist(extraPatterns ...string) (*Blocklist, error) {
	rules := defaultBlockRules()
	for i, raw := range extraPatterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("compile blocked pattern %q: %w", raw, err)
		}
		rules = append(rules, BlockRule{Name: fmt.Sprintf("custom-%d", i+1), Pattern: pattern})
	}

	return &Blocklist{rules: rules}, nil
}

func (b *Blocklist) Rules() []BlockRule {
	return append([]BlockRule(nil), b.rules...)
}

// Match returns the first rule the directive trips.
func (b *Blocklist) Match(directive Directive) (BlockRule, bool) {
	if b == nil {
		return BlockRule{}, false
	}

	for _, rule := range b.rules {
		if rule.Pattern.MatchString(string(directive)) {
			return rule, true
		}
	}

	return BlockRule{}, false
}
