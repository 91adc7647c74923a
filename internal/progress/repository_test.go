package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		missing  bool

		want      Record
		wantError bool
	}{
		{
			name: "existing record",
			contents: `streak: 4
last_check_in: "2026-08-30"
words_learned: 20
`,
			want: Record{
				Streak:       4,
				LastCheckIn:  NewDateFromTime(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)),
				WordsLearned: 20,
			},
		},
		{
			name:    "missing file returns zero record",
			missing: true,
			want:    Record{},
		},
		{
			name:      "corrupted file",
			contents:  "streak: [not a number",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "progress.yml")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o644))
			}

			got, err := NewYAMLRepository(path).Load()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLRepository_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.yml")
	repository := NewYAMLRepository(path)

	record := Record{
		Streak:       9,
		LastCheckIn:  NewDateFromTime(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		WordsLearned: 45,
	}
	require.NoError(t, repository.Save(record))

	got, err := repository.Load()
	require.NoError(t, err)
	assert.Equal(t, record, got)
}
