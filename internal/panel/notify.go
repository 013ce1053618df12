package panel

import (
	"fmt"
	"io"
	"sync"
)

// Notifier prints transient toast-style notices. It never blocks a view and
// keeps the last few messages for tests and the shell's status line.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	recent []string
}

// historySize bounds the kept notice history.
const historySize = 20

// NewNotifier returns a Notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) push(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recent = append(n.recent, line)
	if len(n.recent) > historySize {
		n.recent = n.recent[len(n.recent)-historySize:]
	}
	fmt.Fprintln(n.out, line)
}

// Success shows a success toast.
func (n *Notifier) Success(format string, args ...any) {
	n.push("✓ " + fmt.Sprintf(format, args...))
}

// Error shows an error toast.
func (n *Notifier) Error(format string, args ...any) {
	n.push("✗ " + fmt.Sprintf(format, args...))
}

// Info shows a neutral toast.
func (n *Notifier) Info(format string, args ...any) {
	n.push("• " + fmt.Sprintf(format, args...))
}

// Recent returns a copy of the kept notice history, newest last.
func (n *Notifier) Recent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.recent))
	copy(out, n.recent)
	return out
}
