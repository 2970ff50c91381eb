package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UIColors 定义统一的颜色主题
type UIColors struct {
	Gray  lipgloss.Color
	Blue  lipgloss.Color
	Green lipgloss.Color
	White lipgloss.Color

	DarkBlue  lipgloss.Color
	DarkGreen lipgloss.Color
}

// DefaultColors 返回默认的颜色主题
func DefaultColors() UIColors {
	return UIColors{
		Gray:      lipgloss.Color("245"),
		Blue:      lipgloss.Color("39"),
		Green:     lipgloss.Color("42"),
		White:     lipgloss.Color("255"),
		DarkBlue:  lipgloss.Color("19"),
		DarkGreen: lipgloss.Color("22"),
	}
}

// UIStyles 定义统一的样式
type UIStyles struct {
	Colors      UIColors
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Hint        lipgloss.Style
	Progress    lipgloss.Style
	Success     lipgloss.Style
}

// DefaultStyles 返回默认的样式集
func DefaultStyles() UIStyles {
	colors := DefaultColors()
	return UIStyles{
		Colors:      colors,
		Prompt:      lipgloss.NewStyle().Foreground(colors.Blue).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(colors.Gray),
		Hint:        lipgloss.NewStyle().Foreground(colors.Gray),
		Progress: lipgloss.NewStyle().
			Foreground(colors.Blue).
			Background(colors.DarkBlue).
			Bold(true).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Background(colors.DarkGreen).
			Bold(true).
			Padding(0, 1),
	}
}

// RenderStatusBar 渲染带样式的状态条
func RenderStatusBar(message string, isSuccess bool) string {
	styles := DefaultStyles()
	style := styles.Progress
	indicator := "▶"
	if isSuccess {
		style = styles.Success
		indicator = "✓"
	}
	return style.Render(indicator + " " + message)
}
