package model

// ActivationStatus represents the progress of a single card activation
type ActivationStatus string

const (
	// ActivationPending means the activation is created but not started
	ActivationPending ActivationStatus = "Pending"

	// ActivationFetching means the image bytes are being fetched
	ActivationFetching ActivationStatus = "Fetching"

	// ActivationCopying means the image is being written to the clipboard
	ActivationCopying ActivationStatus = "Copying"

	// ActivationSaving means the download fallback is writing the file
	ActivationSaving ActivationStatus = "Saving"

	// ActivationCopied means the image landed on the clipboard
	ActivationCopied ActivationStatus = "Copied"

	// ActivationDownloaded means the image was saved to the downloads folder
	ActivationDownloaded ActivationStatus = "Downloaded"

	// ActivationFailed means neither copy nor download succeeded
	ActivationFailed ActivationStatus = "Failed"
)

// String returns the string representation of ActivationStatus
func (s ActivationStatus) String() string {
	return string(s)
}

// IsActive returns true while the activation still has work to do
func (s ActivationStatus) IsActive() bool {
	return s == ActivationFetching || s == ActivationCopying || s == ActivationSaving
}

// IsFinished returns true if the activation reached a terminal state
func (s ActivationStatus) IsFinished() bool {
	return s == ActivationCopied || s == ActivationDownloaded || s == ActivationFailed
}

// Notification messages shown once per finished activation
const (
	MessageCopied         = "Copied to clipboard!"
	MessageDownloaded     = "Downloaded!"
	MessageDownloadFailed = "Download failed"
)

// Message returns the toast text for a terminal status, or "" otherwise
func (s ActivationStatus) Message() string {
	switch s {
	case ActivationCopied:
		return MessageCopied
	case ActivationDownloaded:
		return MessageDownloaded
	case ActivationFailed:
		return MessageDownloadFailed
	default:
		return ""
	}
}
