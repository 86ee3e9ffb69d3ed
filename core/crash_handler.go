package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct{ f Finalizer }

var crashTerminal atomic.Pointer[finalizerBox]

// crash hooks, replaced in tests
var (
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashTerminal registers the screen to restore before a crash report; nil clears it
func SetCrashTerminal(f Finalizer) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&finalizerBox{f: f})
}

// HandleCrash restores the terminal, prints the panic with a stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashTerminal.Swap(nil); box != nil {
		box.f.Fini()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery
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
