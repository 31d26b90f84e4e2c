package domain

import "strings"

// GameMode selects how the player answers.
type GameMode string

const (
	ModeMultipleChoice GameMode = "multiple-choice"
	ModeFreeText       GameMode = "free-text"
)

// DisplayNameMaxLength bounds player names and shared usernames.
const DisplayNameMaxLength = 20

// Settings are the per-player game preferences.
type Settings struct {
	OptionCount   int        `json:"optionCount"`
	TimerEnabled  bool       `json:"timerEnabled"`
	TimerDuration int        `json:"timerDuration"`
	Mode          GameMode   `json:"gameMode"`
	QuestionCount int        `json:"questionCount"`
	Difficulty    Difficulty `json:"difficulty"`
	Language      Language   `json:"language"`
}

// DefaultSettings returns the settings used for new players.
func DefaultSettings() Settings {
	return Settings{
		OptionCount:   4,
		TimerEnabled:  true,
		TimerDuration: 20,
		Mode:          ModeMultipleChoice,
		QuestionCount: 20,
		Difficulty:    DifficultyEasy,
		Language:      LangEN,
	}
}

// Normalize keeps the valid fields of s and resets the rest to defaults.
// TimerEnabled is a plain bool and is always kept.
func (s Settings) Normalize() Settings {
	out := DefaultSettings()
	switch s.OptionCount {
	case 4, 6, 8:
		out.OptionCount = s.OptionCount
	}
	out.TimerEnabled = s.TimerEnabled
	if s.TimerDuration > 0 && s.TimerDuration <= 60 {
		out.TimerDuration = s.TimerDuration
	}
	if s.Mode == ModeMultipleChoice || s.Mode == ModeFreeText {
		out.Mode = s.Mode
	}
	switch s.QuestionCount {
	case 10, 20, 50, 100:
		out.QuestionCount = s.QuestionCount
	}
	if s.Difficulty.Valid() {
		out.Difficulty = s.Difficulty
	}
	if s.Language == LangEN || s.Language == LangFR {
		out.Language = s.Language
	}
	return out
}

// TrimDisplayName trims and truncates a display name to DisplayNameMaxLength runes.
func TrimDisplayName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > DisplayNameMaxLength {
		runes = runes[:DisplayNameMaxLength]
	}
	return string(runes)
}
