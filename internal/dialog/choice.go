package dialog

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback payloads arriving from the inline keyboards. Parsed once here at
// the boundary; nothing downstream matches on raw strings.
const (
	callbackAddPoint       = "add_point"
	callbackFinishRoute    = "finish_route"
	callbackIntervalPrefix = "interval_"
)

type ChoiceKind int

const (
	ChoiceAddPoint ChoiceKind = iota
	ChoiceFinishRoute
	ChoiceSelectInterval
)

// Choice is the closed variant of button presses a user can make.
// Interval is only meaningful for ChoiceSelectInterval.
type Choice struct {
	Kind     ChoiceKind
	Interval int
}

// ParseChoice maps a callback payload onto a Choice. Interval selections
// outside 1..5 are rejected.
func ParseChoice(data string) (Choice, error) {
	switch {
	case data == callbackAddPoint:
		return Choice{Kind: ChoiceAddPoint}, nil
	case data == callbackFinishRoute:
		return Choice{Kind: ChoiceFinishRoute}, nil
	case strings.HasPrefix(data, callbackIntervalPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(data, callbackIntervalPrefix))
		if err != nil {
			return Choice{}, fmt.Errorf("invalid interval payload %q", data)
		}
		if n < 1 || n > 5 {
			return Choice{}, fmt.Errorf("interval %d out of range", n)
		}
		return Choice{Kind: ChoiceSelectInterval, Interval: n}, nil
	default:
		return Choice{}, fmt.Errorf("unknown callback payload %q", data)
	}
}

// IntervalCallback builds the payload for a day-count button.
func IntervalCallback(n int) string {
	return fmt.Sprintf("%s%d", callbackIntervalPrefix, n)
}

// AddPointCallback and FinishRouteCallback expose the payloads to the
// keyboard builders in the transport adapter.
func AddPointCallback() string    { return callbackAddPoint }
func FinishRouteCallback() string { return callbackFinishRoute }
