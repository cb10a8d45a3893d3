package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"

	"github.com/nao1215/sentinel/internal/model"
)

// ErrNotText is returned when a file is not valid UTF-8 text.
var ErrNotText = errors.New("file is not valid UTF-8 text")

func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// Count is the result of counting one file.
type Count struct {
	// Tokens is the number of tokens in Content.
	Tokens int

	// Content is the decoded file text.
	Content string
}

// Counter counts tokens with a fixed encoding.
type Counter struct {
	encoding string
	bpe      *tiktoken.Tiktoken
}

// NewCounter loads the named encoding (for example "cl100k_base").
func NewCounter(encoding string) (*Counter, error) {
	bpe, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %s: %w", encoding, err)
	}
	return &Counter{encoding: encoding, bpe: bpe}, nil
}

// Encoding returns the encoding name.
func (c *Counter) Encoding() string {
	return c.encoding
}

// CountText returns the number of tokens in text.
// Special-token markers in text are counted as ordinary text.
func (c *Counter) CountText(text string) int {
	return len(c.bpe.Encode(text, nil, nil))
}

// CountFile reads path as UTF-8 text and counts its tokens.
// It returns ErrNotText when the content is not valid UTF-8.
func (c *Counter) CountFile(path string) (Count, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the session listing
	if err != nil {
		return Count{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Count{}, fmt.Errorf("%w: %s", ErrNotText, path)
	}

	content := string(data)
	return Count{Tokens: c.CountText(content), Content: content}, nil
}

// Rank counts every named file under dir and returns them ordered by token
// count, largest first. Ties are ordered by name descending, so the result
// does not depend on the order of names.
func (c *Counter) Rank(dir string, names []string) ([]model.FileEntry, error) {
	ranked := make([]model.FileEntry, 0, len(names))
	for _, name := range names {
		count, err := c.CountFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, model.FileEntry{Name: name, Tokens: count.Tokens})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Tokens != ranked[j].Tokens {
			return ranked[i].Tokens > ranked[j].Tokens
		}
		return ranked[i].Name > ranked[j].Name
	})
	return ranked, nil
}
