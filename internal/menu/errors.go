package menu

import "fmt"

// ContractViolation reports a programmer error such as placing a button
// outside the grid or opening a session twice. It is raised with panic.
type ContractViolation struct {
	Op     string
	Detail string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("menu: %s: %s", e.Op, e.Detail)
}

func violate(op, format string, args ...interface{}) {
	panic(&ContractViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}
