//go:build !chronos_debug

package chronos

type labeledItem struct{}

func debugEnter(_ ...any)                  {}
func debugExit(_ ...any)                   {}
func debugEvent(_ EventType, _ ...any)     {}
func debugInfo(_ ...any)                   {}
func debugIO(_ ...any)                     {}
func debugCascade(_ ...any)                {}
func debugSaturate(_ ...any)               {}
func debugConstraint(_ ...any)             {}
func debugOffset(_ ...any)                 {}
func debugCalendar(_ ...any)               {}
func debugText(_ ...any)                   {}
func debugPath(_ ...any) func(_ ...any)    { return func(_ ...any) {} }
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
