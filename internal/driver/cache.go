package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sqlex/internal/source"
	"sqlex/internal/token"
)

// Bump when TokenPayload or the lexer output changes shape.
const tokenCacheSchema uint16 = 1

// TokenCache keeps lexed token streams on disk keyed by the SHA-256 of the
// file content. Safe for concurrent use; a nil cache is a no-op.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// TokenPayload is the msgpack document stored per content hash.
type TokenPayload struct {
	Schema uint16
	Path   string // только для отладки, ключ: хэш
	Size   int
	Tokens []CachedToken
}

type CachedToken struct {
	Kind     int32
	Start    uint32
	End      uint32
	Text     string
	Leading  []CachedTrivia `msgpack:",omitempty"`
	Trailing []CachedTrivia `msgpack:",omitempty"`
	Name     string         `msgpack:",omitempty"`
	Value    string         `msgpack:",omitempty"`
	Int      int32          `msgpack:",omitempty"`
	Float    float64        `msgpack:",omitempty"`
}

type CachedTrivia struct {
	Kind  uint8
	Text  string
	Raw   string
	Start uint32
	End   uint32
}

// DefaultCacheDir: $XDG_CACHE_HOME/sqlex/tokens or ~/.cache/sqlex/tokens.
func DefaultCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "sqlex", "tokens"), nil
}

// OpenTokenCache creates dir if needed; an empty dir means DefaultCacheDir.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// первые два символа: подкаталог, как в git objects
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put writes payload atomically: temp file in the same directory, then rename.
func (c *TokenCache) Put(key [32]byte, payload *TokenPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get decodes the payload for key; (false, nil) when absent.
func (c *TokenCache) Get(key [32]byte, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached stream.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// Load returns the cached stream of file with spans bound to file.ID.
// Corrupt, stale-schema or size-mismatched entries count as misses.
func (c *TokenCache) Load(file *source.File) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	var payload TokenPayload
	ok, err := c.Get(file.Hash, &payload)
	if err != nil || !ok || payload.Schema != tokenCacheSchema || payload.Size != len(file.Content) {
		return nil, false
	}
	return decodeTokens(file.ID, payload.Tokens), true
}

// Store saves toks under the hash of file.
func (c *TokenCache) Store(file *source.File, toks []token.Token) error {
	if c == nil {
		return nil
	}
	return c.Put(file.Hash, &TokenPayload{
		Schema: tokenCacheSchema,
		Path:   file.Path,
		Size:   len(file.Content),
		Tokens: encodeTokens(toks),
	})
}

func encodeTokens(toks []token.Token) []CachedToken {
	out := make([]CachedToken, len(toks))
	for i, tok := range toks {
		out[i] = CachedToken{
			Kind:     int32(tok.Kind),
			Start:    tok.Span.Start,
			End:      tok.Span.End,
			Text:     tok.Text,
			Leading:  encodeTrivia(tok.Leading),
			Trailing: encodeTrivia(tok.Trailing),
			Name:     tok.Name,
			Value:    tok.Value,
			Int:      tok.Int,
			Float:    tok.Float,
		}
	}
	return out
}

func encodeTrivia(ts []token.Trivia) []CachedTrivia {
	if len(ts) == 0 {
		return nil
	}
	out := make([]CachedTrivia, len(ts))
	for i, t := range ts {
		out[i] = CachedTrivia{Kind: uint8(t.Kind), Text: t.Text, Raw: t.Raw, Start: t.Span.Start, End: t.Span.End}
	}
	return out
}

func decodeTokens(file source.FileID, cached []CachedToken) []token.Token {
	out := make([]token.Token, len(cached))
	for i, c := range cached {
		out[i] = token.Token{
			Kind:     token.Kind(c.Kind),
			Span:     source.Span{File: file, Start: c.Start, End: c.End},
			Text:     c.Text,
			Leading:  decodeTrivia(file, c.Leading),
			Trailing: decodeTrivia(file, c.Trailing),
			Name:     c.Name,
			Value:    c.Value,
			Int:      c.Int,
			Float:    c.Float,
		}
	}
	return out
}

func decodeTrivia(file source.FileID, cached []CachedTrivia) []token.Trivia {
	if len(cached) == 0 {
		return nil
	}
	out := make([]token.Trivia, len(cached))
	for i, c := range cached {
		out[i] = token.Trivia{
			Kind: token.TriviaKind(c.Kind),
			Text: c.Text,
			Raw:  c.Raw,
			Span: source.Span{File: file, Start: c.Start, End: c.End},
		}
	}
	return out
}
