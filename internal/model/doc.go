package model

// Package model defines domain data structures used across the app: catalog
// cards, display-name derivation, and the activation record with its status
// enum. Structures are designed for direct binding in the UI and explicit
// state transitions.
