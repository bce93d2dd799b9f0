package assets

// Package assets fetches image bytes from the asset folder (a directory or a
// base URL) and converts them for the clipboard and for card thumbnails.
