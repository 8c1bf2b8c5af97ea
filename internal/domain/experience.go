package domain

import "time"

// Experience records one turn that produced directives: what was asked, what
// the council answered and what running it produced.
type Experience struct {
	ID          string    `json:"id"`
	Instruction string    `json:"instruction"`
	Response    string    `json:"response"`
	Result      string    `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupervisedSample is one rewritten answer produced from an experience.
type SupervisedSample struct {
	Context  string `json:"context"`
	Response string `json:"response"`
}
