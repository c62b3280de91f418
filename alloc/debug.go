package alloc

import (
	"fmt"
	"os"
)

// Debug flag - set to true to enable internal consistency checks (compile-time toggle).
const debugAlloc = false

// Runtime flag for allocation logging - controlled by POOLKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("POOLKIT_LOG_ALLOC") != ""

// assertf panics when cond does not hold. Compiled out unless debugAlloc is on.
func assertf(cond bool, format string, args ...any) {
	if debugAlloc && !cond {
		panic("alloc: " + fmt.Sprintf(format, args...))
	}
}

func tracef(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[alloc] "+format+"\n", args...)
	}
}
