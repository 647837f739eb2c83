package words

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "lowercase", input: "Crane", want: "crane", ok: true},
		{name: "possessive keeps s", input: "cat's", want: "cats", ok: true},
		{name: "contraction", input: "don't", want: "dont", ok: true},
		{name: "surrounding space", input: "  slate\r", want: "slate", ok: true},
		{name: "digits skipped", input: "b4", ok: false},
		{name: "hyphen skipped", input: "well-known", ok: false},
		{name: "accent skipped", input: "café", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_TextFile(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "words", "Crane\ncat's\nslate\nCRANE\n\nab1de\nlabel\n")

	d, err := Load(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.True(t, d.Contains("crane"))
	assert.True(t, d.Contains("cats"))
	assert.False(t, d.Contains("cat's"))
	assert.False(t, d.Contains("Crane"))
	assert.Equal(t, []string{"crane", "slate", "label"}, d.WordsOfLength(5))
	assert.Equal(t, []string{"cats"}, d.WordsOfLength(4))
}

func TestLoad_Unreadable(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrSourceUnreadable)

	_, err = Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrSourceUnreadable)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestLoad_SQLite(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "dict.sqlite")
	db, err := sql.Open("sqlite3", p)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE words (word TEXT NOT NULL)`)
	require.NoError(t, err)
	for _, w := range []string{"Crane", "queen's", "x-ray", "slate"} {
		_, err = db.Exec(`INSERT INTO words(word) VALUES (?)`, w)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	d, err := Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("queens"))
	assert.Equal(t, []string{"crane", "slate"}, d.WordsOfLength(5))
}

func TestLoad_SQLiteWithoutWordsTable(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", p)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Load(context.Background(), p)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestLoad_SQLiteURICharactersInPath(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"my#words.db", "what?.sqlite", "100%.sqlite3"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			plain := filepath.Join(dir, "plain.db")
			db, err := sql.Open("sqlite3", plain)
			require.NoError(t, err)
			_, err = db.Exec(`CREATE TABLE words (word TEXT NOT NULL); INSERT INTO words(word) VALUES ('crane')`)
			require.NoError(t, err)
			require.NoError(t, db.Close())

			p := filepath.Join(dir, name)
			require.NoError(t, os.Rename(plain, p))

			d, err := Load(context.Background(), p)
			require.NoError(t, err)
			assert.True(t, d.Contains("crane"))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.Equal(t, []string{name}, names, "no other database file may be created")
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	dsn, err := sqliteDSN("rel/my#words.db")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "file:///"), dsn)
	assert.True(t, strings.HasSuffix(dsn, "/rel/my%23words.db?mode=ro&_busy_timeout=5000"), dsn)
}

func TestLoad_EmbeddedIsExactSourceName(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), EmbeddedSource+"words")
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	d, err := Load(context.Background(), EmbeddedSource)
	require.NoError(t, err)
	for n := 3; n <= 9; n++ {
		assert.NotEmpty(t, d.WordsOfLength(n), "length %d", n)
	}
	assert.True(t, d.Contains("kings"))
}

func TestPickRandom(t *testing.T) {
	t.Parallel()

	d := New([]string{"cat", "crane", "slate", "label", "dog"}, WithSeed(42))

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		w, err := d.PickRandom(5)
		require.NoError(t, err)
		require.Len(t, w, 5)
		seen[w]++
	}
	assert.Len(t, seen, 3, "every five letter word should come up")

	_, err := d.PickRandom(7)
	assert.ErrorIs(t, err, ErrNoWordsOfLength)
}

func TestPickRandom_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	list := []string{"crane", "slate", "label", "crate", "there"}
	a := New(list, WithSeed(7))
	b := New(list, WithSeed(7))
	for i := 0; i < 20; i++ {
		wa, err := a.PickRandom(5)
		require.NoError(t, err)
		wb, err := b.PickRandom(5)
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
	}
}
