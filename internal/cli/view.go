package cli

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 3).
			Width(60)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	pronunciationStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("LingoFlow"))
	sb.WriteString("  " + m.StreakLabel())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.activeTab {
	case tabLearn:
		sb.WriteString(m.renderLearn())
	case tabImage:
		sb.WriteString(m.renderImage())
	case tabVideo:
		sb.WriteString(m.renderVideo())
	}

	sb.WriteString(helpStyle.Render("tab: switch view • ctrl+c: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, 3)
	for _, t := range []tab{tabLearn, tabImage, tabVideo} {
		style := inactiveTabStyle
		if t == m.activeTab {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderLearn() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level: %s (press l to change)\n\n", m.level))

	if m.loadingWords {
		sb.WriteString(m.spinner.View() + " Generating a word batch...\n\n")
		return sb.String()
	}
	if m.learnErr != nil {
		sb.WriteString(errorStyle.Render("Error: "+m.learnErr.Error()) + "\n")
		sb.WriteString("Press r to retry.\n\n")
		return sb.String()
	}
	if m.offerBatch {
		sb.WriteString(cardStyle.Render("You finished this batch! 🎉\n\nPress enter to study a new batch, or esc to review."))
		sb.WriteString("\n\n")
		return sb.String()
	}
	if len(m.words) == 0 {
		sb.WriteString("Press r to generate a word batch.\n\n")
		return sb.String()
	}

	sb.WriteString(m.ProgressLabel() + "\n")
	sb.WriteString(m.renderCard(m.words[m.index]))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space: flip • n/p: next/previous • r: new batch"))
	sb.WriteString("\n\n")
	return sb.String()
}

func (m Model) renderCard(entry generation.WordEntry) string {
	if !m.flipped {
		front := wordStyle.Render(entry.Word)
		if entry.Pronunciation != "" {
			front += "\n" + pronunciationStyle.Render(entry.Pronunciation)
		}
		return cardStyle.Render(front)
	}

	var sb strings.Builder
	sb.WriteString(wordStyle.Render(entry.Word) + "\n\n")
	sb.WriteString(labelStyle.Render("Definition: ") + entry.DefinitionEN + "\n")
	sb.WriteString(labelStyle.Render("释义: ") + entry.DefinitionCN + "\n")
	sb.WriteString(labelStyle.Render("Example: ") + entry.Example + "\n")
	if len(entry.Synonyms) > 0 {
		sb.WriteString(labelStyle.Render("Synonyms: ") + strings.Join(entry.Synonyms, ", ") + "\n")
	}
	return cardStyle.Render(sb.String())
}

func (m Model) renderImage() string {
	var sb strings.Builder

	sb.WriteString(m.imagePrompt.View() + "\n\n")
	sb.WriteString(fmt.Sprintf("Size: %s (press ctrl+s to cycle)\n\n", m.imageSize))

	switch {
	case m.loadingImage:
		sb.WriteString(m.spinner.View() + " Generating image...\n")
	case m.imageErr != nil:
		sb.WriteString(errorStyle.Render("Error: "+m.imageErr.Error()) + "\n")
	case m.imageOutput != "":
		sb.WriteString(successStyle.Render("Saved to "+m.imageOutput) + "\n")
	}

	sb.WriteString(helpStyle.Render("enter: generate"))
	sb.WriteString("\n\n")
	return sb.String()
}

func (m Model) renderVideo() string {
	var sb strings.Builder

	sb.WriteString(m.videoPrompt.View() + "\n")
	sb.WriteString(m.videoImage.View() + "\n\n")
	sb.WriteString(fmt.Sprintf("Aspect ratio: %s (press ctrl+a to toggle)\n\n", m.aspectRatio))

	switch {
	case m.loadingVideo:
		sb.WriteString(m.spinner.View() + " Generating video, this can take a few minutes...\n")
	case m.videoErr != nil:
		sb.WriteString(errorStyle.Render("Error: "+m.videoErr.Error()) + "\n")
	case m.videoOutput != "":
		sb.WriteString(successStyle.Render("Saved to "+m.videoOutput) + "\n")
	}

	sb.WriteString(helpStyle.Render("up/down: switch field • enter: generate"))
	sb.WriteString("\n\n")
	return sb.String()
}
