// Package tui implements the interactive palette explorer built on
// bubbletea. The model is split across files by concern: model_types.go
// holds the state definitions, model_update.go the message loop,
// model_view.go the rendering dispatch, and handler_key_*.go the
// keyboard handling for the input and palette modes. Pure rendering
// pieces live in the components subpackage.
package tui
