package render

import "errors"

// ErrNilGraph indicates that Render received a nil graph.
var ErrNilGraph = errors.New("render: nil graph")

// ErrInconsistentInput indicates a tree edge whose endpoints are not
// adjacent in the graph.
var ErrInconsistentInput = errors.New("render: tree edge not present in graph")

// ErrUnknownFormat indicates an unsupported output format or file extension.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ErrOptionViolation indicates an out-of-range option value.
var ErrOptionViolation = errors.New("render: invalid option value")
