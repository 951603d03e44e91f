package input

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, data string) []Key {
	t.Helper()
	var dec Decoder
	var keys []Key
	for i := 0; i < len(data); i++ {
		if k, ok := dec.Feed(data[i]); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestDecoderArrowsAndChars(t *testing.T) {
	keys := decodeAll(t, "\x1b[A\x1b[B\x1b[C\x1b[DwAsdRx")
	assert.Equal(t, []Key{
		Arrow(CodeUp), Arrow(CodeDown), Arrow(CodeRight), Arrow(CodeLeft),
		Char('w'), Char('a'), Char('s'), Char('d'), Char('r'),
	}, keys)
}

func TestDecoderQuit(t *testing.T) {
	assert.Equal(t, []Key{Quit, Quit}, decodeAll(t, "q\x03"))
}

func TestDecoderDropsUnknownSequences(t *testing.T) {
	// ESC followed by a plain key keeps the key; ESC [ Z is swallowed.
	assert.Equal(t, []Key{Char('w')}, decodeAll(t, "\x1bw\x1b[Z"))
}

func TestKeyIsArrow(t *testing.T) {
	assert.True(t, Arrow(CodeLeft).IsArrow())
	assert.False(t, Char('a').IsArrow())
	assert.False(t, Quit.IsArrow())
}

// chunkReader returns one byte per Read to exercise split escape sequences.
type chunkReader struct {
	data string
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.data == "" {
		return 0, io.EOF
	}
	p[0] = c.data[0]
	c.data = c.data[1:]
	return 1, nil
}

func TestStreamDeliversKeysAcrossReads(t *testing.T) {
	var mu sync.Mutex
	var got []Key
	s := StartStream(&chunkReader{data: "\x1b[Cd"}, func(k Key) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, k)
	})
	<-s.Done()

	require.NoError(t, s.Err())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Key{Arrow(CodeRight), Char('d')}, got)
}

func TestStreamStopsOnEOF(t *testing.T) {
	s := StartStream(strings.NewReader(""), func(Key) {})
	<-s.Done()
	assert.NoError(t, s.Err())
}

func TestFromTcell(t *testing.T) {
	testCases := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Arrow(CodeUp), true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Arrow(CodeLeft), true},
		{"shoot", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), Char('s'), true},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Char('r'), true},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Quit, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Quit, true},
		{"ignored", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Key{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k, ok := FromTcell(tc.ev)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, k)
		})
	}
}
