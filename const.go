package jsonpath

// Library metadata constants.
const (
	LibraryName    = "go-jsonpath"
	LibraryVersion = "0.1.0"
)

// defaultMaxScanDepth bounds recursive descent (..) so that a pathological
// or cyclic provider value cannot drive evaluation into unbounded recursion.
const defaultMaxScanDepth = 256
