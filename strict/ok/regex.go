package ok

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-strict/strict"
)

// ErrInvalidRegex is the cause of every failure due to a pattern that does
// not compile.
var ErrInvalidRegex = errors.New("invalid regular expression")

// maxCacheSize bounds the compiled pattern cache. When full, the whole cache
// is dropped.
const maxCacheSize = 1024

var (
	regexMu    sync.RWMutex
	regexCache = make(map[string]*regexp.Regexp)
)

func cacheLoad(pattern string) (*regexp.Regexp, bool) {
	regexMu.RLock()
	defer regexMu.RUnlock()

	re, found := regexCache[pattern]

	return re, found
}

func cacheStore(pattern string, re *regexp.Regexp) {
	regexMu.Lock()
	defer regexMu.Unlock()

	if len(regexCache) >= maxCacheSize {
		regexCache = make(map[string]*regexp.Regexp)
	}

	regexCache[pattern] = re
}

// ClearCache empties the compiled pattern cache.
func ClearCache() {
	regexMu.Lock()
	defer regexMu.Unlock()

	regexCache = make(map[string]*regexp.Regexp)
}

// Compile compiles an RE2 pattern, caching the result.
//
//	re, err := ok.Compile(userPattern)
//	if err != nil {
//		return fmt.Errorf("filter: %w", err)
//	}
func Compile(pattern string) (*regexp.Regexp, error) {
	return compile("Compile", pattern)
}

func compile(operation, pattern string) (*regexp.Regexp, error) {
	if cached, found := cacheLoad(pattern); found {
		return cached, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, strict.NewUnexpectedFailureMessage(operation, err.Error()).
			WithCause(fmt.Errorf("%w: %w", ErrInvalidRegex, err))
	}

	cacheStore(pattern, re)

	return re, nil
}

// Match returns 1 when pattern matches subject and 0 otherwise.
func Match(pattern, subject string) (int, error) {
	re, err := compile("Match", pattern)
	if err != nil {
		return 0, err
	}

	if re.MatchString(subject) {
		return 1, nil
	}

	return 0, nil
}

// Submatch returns the leftmost match followed by its groups, or an empty
// slice when there is no match.
func Submatch(pattern, subject string) ([]string, error) {
	re, err := compile("Submatch", pattern)
	if err != nil {
		return nil, err
	}

	groups := re.FindStringSubmatch(subject)
	if groups == nil {
		return []string{}, nil
	}

	return groups, nil
}

// Replace replaces up to limit matches of pattern in subject with repl and
// returns the result and the number of replacements. A negative limit
// replaces every match. repl may reference groups as $1 or ${name}.
func Replace(pattern, repl, subject string, limit int) (string, int, error) {
	re, err := compile("Replace", pattern)
	if err != nil {
		return "", 0, err
	}

	if limit == 0 {
		return subject, 0, nil
	}

	matches := re.FindAllStringSubmatchIndex(subject, limit)
	if len(matches) == 0 {
		return subject, 0, nil
	}

	var (
		out  strings.Builder
		last int
	)

	for _, m := range matches {
		out.WriteString(subject[last:m[0]])
		out.Write(re.ExpandString(nil, repl, subject, m))
		last = m[1]
	}

	out.WriteString(subject[last:])

	return out.String(), len(matches), nil
}
