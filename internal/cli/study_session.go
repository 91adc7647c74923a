// Package cli contains the interactive study session built on bubbletea.
package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/at-ishikawa/lingoflow/internal/history"
	"github.com/at-ishikawa/lingoflow/internal/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabLearn tab = iota
	tabImage
	tabVideo
)

func (t tab) String() string {
	switch t {
	case tabLearn:
		return "Learn"
	case tabImage:
		return "Image"
	case tabVideo:
		return "Video"
	}
	return "unknown"
}

// maxReferenceImageBytes limits reference image uploads for video generation.
const maxReferenceImageBytes = 5 * 1024 * 1024

// wordsMsg carries the result of an async vocabulary batch request
type wordsMsg struct {
	entries []generation.WordEntry
	err     error
}

// imageMsg carries the result of an async image generation
type imageMsg struct {
	outputPath string
	err        error
}

// videoMsg carries the result of an async video generation
type videoMsg struct {
	outputPath string
	err        error
}

// Session bundles the dependencies of the interactive study TUI.
type Session struct {
	Client       generation.Client
	ProgressRepo progress.Repository
	HistoryRepo  history.Repository
	OutputsDir   string
	Now          func() time.Time
}

// Model is the bubbletea model for the study session.
type Model struct {
	session Session

	activeTab tab
	record    progress.Record
	spinner   spinner.Model

	// Learn tab
	level        generation.Level
	words        []generation.WordEntry
	index        int
	flipped      bool
	loadingWords bool
	offerBatch   bool
	learnErr     error

	// Image tab
	imagePrompt  textinput.Model
	imageSize    generation.ImageSize
	loadingImage bool
	imageOutput  string
	imageErr     error

	// Video tab
	videoPrompt  textinput.Model
	videoImage   textinput.Model
	aspectRatio  generation.AspectRatio
	loadingVideo bool
	videoOutput  string
	videoErr     error
}

// NewModel creates the study session model and performs the once-per-process
// daily check-in against the progress repository.
func NewModel(session Session) (Model, error) {
	if session.Now == nil {
		session.Now = time.Now
	}

	record, err := session.ProgressRepo.Load()
	if err != nil {
		return Model{}, fmt.Errorf("progressRepo.Load > %w", err)
	}
	checkedIn := progress.CheckIn(record, session.Now())
	if checkedIn != record {
		if err := session.ProgressRepo.Save(checkedIn); err != nil {
			return Model{}, fmt.Errorf("progressRepo.Save > %w", err)
		}
	}

	imagePrompt := textinput.New()
	imagePrompt.Placeholder = "Describe the mnemonic image to generate..."
	imagePrompt.CharLimit = 500

	videoPrompt := textinput.New()
	videoPrompt.Placeholder = "Describe the motion, or leave empty with a reference image..."
	videoPrompt.CharLimit = 500

	videoImage := textinput.New()
	videoImage.Placeholder = "Path to a reference image (optional, max 5 MB)..."

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		session:     session,
		activeTab:   tabLearn,
		record:      checkedIn,
		spinner:     s,
		level:       generation.LevelCET4,
		imagePrompt: imagePrompt,
		imageSize:   generation.ImageSize1K,
		videoPrompt: videoPrompt,
		videoImage:  videoImage,
		aspectRatio: generation.AspectLandscape,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchWordsCmd(), m.spinner.Tick)
}

// ProgressLabel is the study position indicator shown above the flashcard.
func (m Model) ProgressLabel() string {
	if len(m.words) == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", m.index+1, len(m.words))
}

// StreakLabel is the daily streak shown in the header.
func (m Model) StreakLabel() string {
	return fmt.Sprintf("🔥 %d day streak", m.record.Streak)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsMsg:
		m.loadingWords = false
		if msg.err != nil {
			m.learnErr = msg.err
			return m, nil
		}
		m.learnErr = nil
		m.words = msg.entries
		m.index = 0
		m.flipped = false
		m.offerBatch = false
		if len(msg.entries) == 0 {
			m.learnErr = fmt.Errorf("the provider returned no words, please retry")
		}
		return m, nil

	case imageMsg:
		m.loadingImage = false
		if msg.err != nil {
			m.imageErr = msg.err
			return m, nil
		}
		m.imageErr = nil
		m.imageOutput = msg.outputPath
		return m, nil

	case videoMsg:
		m.loadingVideo = false
		if msg.err != nil {
			m.videoErr = msg.err
			return m, nil
		}
		m.videoErr = nil
		m.videoOutput = msg.outputPath
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % 3
		m.syncFocus()
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab + 2) % 3
		m.syncFocus()
		return m, nil
	}

	switch m.activeTab {
	case tabLearn:
		return m.updateLearnKey(msg)
	case tabImage:
		return m.updateImageKey(msg)
	case tabVideo:
		return m.updateVideoKey(msg)
	}
	return m, nil
}

func (m *Model) syncFocus() {
	m.imagePrompt.Blur()
	m.videoPrompt.Blur()
	m.videoImage.Blur()
	switch m.activeTab {
	case tabImage:
		m.imagePrompt.Focus()
	case tabVideo:
		m.videoPrompt.Focus()
	}
}

func (m Model) updateLearnKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case " ", "enter":
		if m.offerBatch {
			m.loadingWords = true
			m.offerBatch = false
			m.words = nil
			return m, m.fetchWordsCmd()
		}
		m.flipped = !m.flipped
		return m, nil

	case "n", "right":
		if m.offerBatch || len(m.words) == 0 {
			return m, nil
		}
		if m.index < len(m.words)-1 {
			m.index++
			m.flipped = false
			return m, nil
		}
		// Finished the batch: offer a fresh one
		m.offerBatch = true
		return m, nil

	case "p", "left":
		if m.index > 0 {
			m.index--
			m.flipped = false
		}
		return m, nil

	case "l":
		m.level = nextLevel(m.level)
		return m, nil

	case "r":
		if m.loadingWords {
			return m, nil
		}
		m.loadingWords = true
		m.words = nil
		m.offerBatch = false
		return m, m.fetchWordsCmd()

	case "esc":
		m.offerBatch = false
		return m, nil
	}
	return m, nil
}

func nextLevel(level generation.Level) generation.Level {
	levels := generation.Levels()
	for i, l := range levels {
		if l == level {
			return levels[(i+1)%len(levels)]
		}
	}
	return levels[0]
}

func (m Model) updateImageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.imageSize = nextImageSize(m.imageSize)
		return m, nil

	case "enter":
		if m.loadingImage {
			return m, nil
		}
		request := generation.ImageRequest{Prompt: m.imagePrompt.Value(), Size: m.imageSize}
		if err := request.Validate(); err != nil {
			m.imageErr = err
			return m, nil
		}
		m.imageErr = nil
		m.imageOutput = ""
		m.loadingImage = true
		return m, m.generateImageCmd(request)
	}

	var cmd tea.Cmd
	m.imagePrompt, cmd = m.imagePrompt.Update(msg)
	return m, cmd
}

func nextImageSize(size generation.ImageSize) generation.ImageSize {
	switch size {
	case generation.ImageSize1K:
		return generation.ImageSize2K
	case generation.ImageSize2K:
		return generation.ImageSize4K
	}
	return generation.ImageSize1K
}

func (m Model) updateVideoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+a":
		if m.aspectRatio == generation.AspectLandscape {
			m.aspectRatio = generation.AspectPortrait
		} else {
			m.aspectRatio = generation.AspectLandscape
		}
		return m, nil

	case "up", "down":
		if m.videoPrompt.Focused() {
			m.videoPrompt.Blur()
			m.videoImage.Focus()
		} else {
			m.videoImage.Blur()
			m.videoPrompt.Focus()
		}
		return m, nil

	case "enter":
		if m.loadingVideo {
			return m, nil
		}
		request, err := m.buildVideoRequest()
		if err != nil {
			m.videoErr = err
			return m, nil
		}
		m.videoErr = nil
		m.videoOutput = ""
		m.loadingVideo = true
		return m, m.generateVideoCmd(request)
	}

	var cmd tea.Cmd
	if m.videoImage.Focused() {
		m.videoImage, cmd = m.videoImage.Update(msg)
	} else {
		m.videoPrompt, cmd = m.videoPrompt.Update(msg)
	}
	return m, cmd
}

func (m Model) buildVideoRequest() (generation.VideoRequest, error) {
	request := generation.VideoRequest{
		Prompt:      m.videoPrompt.Value(),
		AspectRatio: m.aspectRatio,
	}
	if path := m.videoImage.Value(); path != "" {
		encoded, err := loadReferenceImage(path)
		if err != nil {
			return generation.VideoRequest{}, err
		}
		request.ReferenceImage = encoded
	}
	if err := request.Validate(); err != nil {
		return generation.VideoRequest{}, err
	}
	return request, nil
}

// loadReferenceImage reads and base64-encodes a local image, enforcing the
// upload size limit before reading the file into memory.
func loadReferenceImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("os.Stat(%s) > %w", path, err)
	}
	if info.Size() > maxReferenceImageBytes {
		return "", &generation.ValidationError{
			Field:  "image",
			Reason: fmt.Sprintf("reference image is %d bytes, the limit is 5 MB", info.Size()),
		}
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(contents), nil
}

func (m Model) fetchWordsCmd() tea.Cmd {
	client := m.session.Client
	level := m.level
	historyRepo := m.session.HistoryRepo
	return func() tea.Msg {
		ctx := context.Background()
		entries, err := client.GenerateVocabulary(ctx, generation.VocabularyRequest{Level: level})
		if err != nil {
			return wordsMsg{err: err}
		}
		if historyRepo != nil && len(entries) > 0 {
			_ = historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:   history.KindVocabulary,
				Prompt: fmt.Sprintf("%d word batch", len(entries)),
				Detail: "level=" + string(level),
			})
		}
		return wordsMsg{entries: entries}
	}
}

func (m Model) generateImageCmd(request generation.ImageRequest) tea.Cmd {
	client := m.session.Client
	historyRepo := m.session.HistoryRepo
	outputsDir := m.session.OutputsDir
	now := m.session.Now
	return func() tea.Msg {
		ctx := context.Background()
		image, err := client.GenerateImage(ctx, request)
		if err != nil {
			return imageMsg{err: err}
		}
		outputPath := filepath.Join(outputsDir, fmt.Sprintf("lingoflow-%d.png", now().UnixMilli()))
		if err := writeAsset(outputPath, image.Data); err != nil {
			return imageMsg{err: err}
		}
		if historyRepo != nil {
			_ = historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:       history.KindImage,
				Prompt:     request.Prompt,
				Detail:     "size=" + string(request.Size),
				OutputPath: outputPath,
			})
		}
		return imageMsg{outputPath: outputPath}
	}
}

func (m Model) generateVideoCmd(request generation.VideoRequest) tea.Cmd {
	client := m.session.Client
	historyRepo := m.session.HistoryRepo
	outputsDir := m.session.OutputsDir
	now := m.session.Now
	return func() tea.Msg {
		ctx := context.Background()
		video, err := client.GenerateVideo(ctx, request)
		if err != nil {
			return videoMsg{err: err}
		}
		outputPath := filepath.Join(outputsDir, fmt.Sprintf("veo-creation-%d.mp4", now().UnixMilli()))
		if err := writeAsset(outputPath, video.Data); err != nil {
			return videoMsg{err: err}
		}
		if historyRepo != nil {
			_ = historyRepo.Create(ctx, &history.GenerationRecord{
				Kind:       history.KindVideo,
				Prompt:     request.Prompt,
				Detail:     "aspect=" + string(request.AspectRatio),
				OutputPath: outputPath,
			})
		}
		return videoMsg{outputPath: outputPath}
	}
}

func writeAsset(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
