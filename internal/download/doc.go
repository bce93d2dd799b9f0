package download

// Package download implements card activation: fetch the clicked image, put
// it on the clipboard, and fall back to saving it in the downloads folder. It
// tracks each activation as a task and propagates state changes to the UI.
