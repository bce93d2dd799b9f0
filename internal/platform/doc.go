package platform

// Package platform contains OS-specific helpers: downloads folder discovery,
// collision-free file naming, and opening files or folders in the system
// file manager.
