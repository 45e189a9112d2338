package core

// Color is a terminal colour as a hex string ("#eee4da") or an ANSI code
// ("208"). The empty Color means the terminal default.
type Color string

// ColorDefault leaves the terminal colour unchanged.
const ColorDefault Color = ""
