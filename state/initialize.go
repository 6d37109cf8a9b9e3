package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		DefaultLayer: []byte(`# Starter layer. Used when the layers directory has no layer files,
# kept deliberately small so generated output stays readable.
name: core
vars:
  accent: "#2F5496"
tokens:
  body:
    base: Normal
    props:
      fontSize: 11pt
  body.emphasis:
    base: body
    props:
      fontStyle: italic
  heading:
    base: Heading1
    props:
      color: "{accent}"
  quote:
    base: body
    mode: delta
    props:
      marginLeft: 36pt
      fontStyle: italic
`),
	}
}
