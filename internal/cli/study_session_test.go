package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	mock_generation "github.com/at-ishikawa/lingoflow/internal/mocks/generation"
	"github.com/at-ishikawa/lingoflow/internal/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProgressRepository struct {
	record    progress.Record
	saveCalls int
	loadErr   error
	saveErr   error
}

func (r *fakeProgressRepository) Load() (progress.Record, error) {
	return r.record, r.loadErr
}

func (r *fakeProgressRepository) Save(record progress.Record) error {
	r.saveCalls++
	r.record = record
	return r.saveErr
}

func newTestModel(t *testing.T, client generation.Client) (Model, *fakeProgressRepository) {
	t.Helper()
	repo := &fakeProgressRepository{}
	model, err := NewModel(Session{
		Client:       client,
		ProgressRepo: repo,
		OutputsDir:   t.TempDir(),
		Now:          func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return model, repo
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func pressKey(t *testing.T, m Model, s string) Model {
	t.Helper()
	updated, _ := m.Update(keyMsg(s))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func newWordBatch(count int) []generation.WordEntry {
	entries := make([]generation.WordEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, generation.WordEntry{
			Word:         fmt.Sprintf("word-%d", i+1),
			DefinitionEN: "a definition",
			DefinitionCN: "释义",
			Example:      "an example sentence",
			Synonyms:     []string{"synonym"},
		})
	}
	return entries
}

func TestNewModel(t *testing.T) {
	t.Run("checks in once on start", func(t *testing.T) {
		model, repo := newTestModel(t, nil)

		assert.Equal(t, 1, repo.saveCalls)
		assert.Equal(t, 1, model.record.Streak)
		assert.Equal(t, "🔥 1 day streak", model.StreakLabel())
	})

	t.Run("does not save when already checked in today", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		repo := &fakeProgressRepository{
			record: progress.Record{
				Streak:      3,
				LastCheckIn: progress.NewDateFromTime(now),
			},
		}
		model, err := NewModel(Session{
			Client:       nil,
			ProgressRepo: repo,
			Now:          func() time.Time { return now },
		})
		require.NoError(t, err)

		assert.Equal(t, 0, repo.saveCalls)
		assert.Equal(t, 3, model.record.Streak)
	})

	t.Run("propagates load errors", func(t *testing.T) {
		repo := &fakeProgressRepository{loadErr: errors.New("disk failure")}
		_, err := NewModel(Session{ProgressRepo: repo})
		assert.ErrorContains(t, err, "disk failure")
	})
}

func TestModel_StudyFlow(t *testing.T) {
	t.Run("shows progress and offers a new batch at the end", func(t *testing.T) {
		model, _ := newTestModel(t, nil)

		updated, _ := model.Update(wordsMsg{entries: newWordBatch(5)})
		m := updated.(Model)
		assert.Equal(t, "1 / 5", m.ProgressLabel())

		for i := 0; i < 4; i++ {
			m = pressKey(t, m, "n")
		}
		assert.Equal(t, "5 / 5", m.ProgressLabel())
		assert.False(t, m.offerBatch)

		m = pressKey(t, m, "n")
		assert.True(t, m.offerBatch)
		assert.Contains(t, m.View(), "new batch")
	})

	t.Run("flips the card with space", func(t *testing.T) {
		model, _ := newTestModel(t, nil)
		updated, _ := model.Update(wordsMsg{entries: newWordBatch(2)})
		m := updated.(Model)

		assert.NotContains(t, m.View(), "Definition")
		m = pressKey(t, m, " ")
		assert.Contains(t, m.View(), "Definition")

		// Advancing resets the flip
		m = pressKey(t, m, "n")
		assert.NotContains(t, m.View(), "Definition")
	})

	t.Run("surfaces batch errors and clears the loading state", func(t *testing.T) {
		model, _ := newTestModel(t, nil)
		model.loadingWords = true

		updated, _ := model.Update(wordsMsg{err: errors.New("response error 500")})
		m := updated.(Model)
		assert.False(t, m.loadingWords)
		assert.Contains(t, m.View(), "response error 500")
	})

	t.Run("cycles levels", func(t *testing.T) {
		model, _ := newTestModel(t, nil)
		assert.Equal(t, generation.LevelCET4, model.level)

		m := pressKey(t, model, "l")
		assert.Equal(t, generation.LevelCET6, m.level)
	})
}

func TestModel_ImageTab(t *testing.T) {
	t.Run("rejects an empty prompt without contacting the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_generation.NewMockClient(ctrl)
		// No expectations: any call fails the test

		model, _ := newTestModel(t, client)
		m := pressKey(t, model, "tab")
		require.Equal(t, tabImage, m.activeTab)

		m = pressKey(t, m, "enter")
		assert.False(t, m.loadingImage)
		assert.True(t, generation.IsValidationError(m.imageErr))
	})

	t.Run("records the saved image path", func(t *testing.T) {
		model, _ := newTestModel(t, nil)
		model.loadingImage = true

		updated, _ := model.Update(imageMsg{outputPath: "outputs/lingoflow-1.png"})
		m := updated.(Model)
		assert.False(t, m.loadingImage)
		assert.Contains(t, m.View(), "outputs/lingoflow-1.png")
	})
}

func TestModel_VideoTab(t *testing.T) {
	t.Run("rejects a request with no prompt and no image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_generation.NewMockClient(ctrl)

		model, _ := newTestModel(t, client)
		m := pressKey(t, model, "tab")
		m = pressKey(t, m, "tab")
		require.Equal(t, tabVideo, m.activeTab)

		m = pressKey(t, m, "enter")
		assert.False(t, m.loadingVideo)
		assert.True(t, generation.IsValidationError(m.videoErr))
	})

	t.Run("clears the loading state on failure", func(t *testing.T) {
		model, _ := newTestModel(t, nil)
		model.loadingVideo = true

		updated, _ := model.Update(videoMsg{err: generation.ErrPollTimeout})
		m := updated.(Model)
		assert.False(t, m.loadingVideo)
		assert.ErrorIs(t, m.videoErr, generation.ErrPollTimeout)
	})
}

func TestFetchWordsCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_generation.NewMockClient(ctrl)
	client.EXPECT().
		GenerateVocabulary(gomock.Any(), generation.VocabularyRequest{Level: generation.LevelCET4}).
		Return(newWordBatch(5), nil)

	model, _ := newTestModel(t, client)
	msg := model.fetchWordsCmd()()

	got, ok := msg.(wordsMsg)
	require.True(t, ok)
	require.NoError(t, got.err)
	assert.Len(t, got.entries, 5)
}

func TestGenerateImageCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_generation.NewMockClient(ctrl)
	request := generation.ImageRequest{Prompt: "a watercolor fox", Size: generation.ImageSize2K}
	client.EXPECT().
		GenerateImage(gomock.Any(), request).
		Return(generation.Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}, nil)

	model, _ := newTestModel(t, client)
	msg := model.generateImageCmd(request)()

	got, ok := msg.(imageMsg)
	require.True(t, ok)
	require.NoError(t, got.err)
	contents, err := os.ReadFile(got.outputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, contents)
}

func TestLoadReferenceImage(t *testing.T) {
	t.Run("encodes a small image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reference.png")
		require.NoError(t, os.WriteFile(path, []byte{0, 0, 0}, 0o644))

		encoded, err := loadReferenceImage(path)
		require.NoError(t, err)
		assert.Equal(t, "AAAA", encoded)
	})

	t.Run("rejects files over the size limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "huge.png")
		require.NoError(t, os.WriteFile(path, make([]byte, maxReferenceImageBytes+1), 0o644))

		_, err := loadReferenceImage(path)
		assert.True(t, generation.IsValidationError(err))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := loadReferenceImage(filepath.Join(t.TempDir(), "missing.png"))
		assert.Error(t, err)
	})
}
