//go:build tools

package tools

// These imports ensure that "go mod tidy" won't remove deps
// for build-time dependencies like code generators
import (
	_ "golang.org/x/tools/cmd/stringer"
)
