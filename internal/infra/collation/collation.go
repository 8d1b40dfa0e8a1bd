// Package collation provides locale-aware string comparison.
package collation

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language tag is configured.
const DefaultLanguage = "ko"

// Collator compares strings by the rules of a language.
// It is safe for concurrent use.
type Collator struct {
	mu   sync.Mutex
	tag  language.Tag
	coll *collate.Collator
}

// New creates a collator for a BCP 47 language tag such as "ko" or "en".
// An empty tag selects DefaultLanguage.
func New(tag string) (*Collator, error) {
	if tag == "" {
		tag = DefaultLanguage
	}
	t, err := language.Parse(tag)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid collation language %q", tag)
	}
	return &Collator{
		tag:  t,
		coll: collate.New(t),
	}, nil
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coll.CompareString(a, b)
}

// Language returns the collation language tag.
func (c *Collator) Language() string {
	return c.tag.String()
}
