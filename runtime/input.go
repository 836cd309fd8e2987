package bruntime

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// InputProvider supplies one line for an input call. The prompt, if any,
// has already been emitted as output.
type InputProvider func(prompt string) (string, error)

type inputState struct {
	queue    []string
	provider InputProvider
}

// EnqueueInput queues scripted answers consumed before the provider is asked.
func (vm *VM) EnqueueInput(values ...string) {
	vm.input.queue = append(vm.input.queue, values...)
}

func (vm *VM) SetInputProvider(p InputProvider) {
	vm.input.provider = p
}

func (vm *VM) consumeQueuedInput() (string, bool) {
	if len(vm.input.queue) == 0 {
		return "", false
	}
	v := vm.input.queue[0]
	vm.input.queue = vm.input.queue[1:]
	return v, true
}

// readInput returns the next queued line, else the provider's answer, else "".
func (vm *VM) readInput(prompt string) (string, error) {
	raw, ok := vm.consumeQueuedInput()
	if !ok && vm.input.provider != nil {
		v, err := vm.input.provider(prompt)
		if err != nil {
			return "", err
		}
		raw = v
	}
	return strings.TrimRight(raw, "\r\n"), nil
}

// parseIntText reads a decimal integer with an optional sign. Surrounding
// blanks are ignored and full-width digits and signs are accepted.
func parseIntText(raw string) (int64, bool) {
	raw = strings.TrimSpace(width.Narrow.String(raw))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
