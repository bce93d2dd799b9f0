package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Card grid sizing
const (
	CardWidth      float32 = 176
	CardHeight     float32 = 212
	CardImageSize  float32 = 160
	CardCornerSize float32 = 6
)

// Toast sizing
const (
	ToastMinWidth float32 = 240
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 280
)

// Logo sizing
const (
	LogoSize float32 = 32
)
