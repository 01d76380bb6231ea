// token.go provides token counting for tracking entries.
//
// Byte counts alone undersell the point of condensed output: what matters
// for an LLM context window is tokens. Counts use the cl100k_base encoding,
// a reasonable proxy across current models.
//
// The tokenizer is loaded lazily on first use because it is not free to
// initialise and most failures (tracking disabled, tokens disabled) never
// need it. Load failures degrade to zero counts rather than erroring.

package track

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tokensEnabled = true

	encOnce sync.Once
	enc     *tiktoken.Tiktoken
)

// SetTokens enables or disables token counting for subsequent entries.
// Byte counts are always recorded regardless.
func SetTokens(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	tokensEnabled = enabled
}

func countTokens(text string) int {
	mu.Lock()
	enabled := tokensEnabled
	mu.Unlock()

	if !enabled || text == "" {
		return 0
	}
	encOnce.Do(func() {
		e, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			enc = e
		}
	})
	if enc == nil {
		return 0
	}
	return len(enc.Encode(text, nil, nil))
}
