// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vi-elevator/logger"
)

// Finisher restores the terminal; satisfied by tcell.Screen
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterScreen sets the screen finalized before a crash report; nil clears it
func RegisterScreen(s Finisher) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic and stack trace, and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Raw mode would garble the trace
	if s != nil {
		s.Fini()
	}

	stack := debug.Stack()
	logger.Get().Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", stack)

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
