package worldgen

import (
	"fmt"
	"time"
)

// Generation log categories.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // a progress log entry
	LogWarning                         // a warning log entry
	LogError                           // an error log entry
)

// TimerLabel identifies one of the timed stages of dual-graph generation.
type TimerLabel int

const (
	TimerTotal TimerLabel = iota
	TimerSample
	TimerTessellate
	TimerCentroids
	TimerAssemble
	maxTimers
)

const maxMessages = 1000

// BuildContext gathers the log messages and per-stage timings of a
// dual-graph build. Logging and timers can be switched off, in which case
// every method is a cheap no-op; a nil context is valid and fully disabled,
// which is what BuildDualGraph uses when the caller does not provide one.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a BuildContext with logging and timers both set
// to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	ctx.numMessages = 0
}

// ResetTimers clears all timers.
func (ctx *BuildContext) ResetTimers() {
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

// Progressf logs a progress message.
func (ctx *BuildContext) Progressf(format string, args ...interface{}) {
	ctx.log(LogProgress, format, args...)
}

// Warningf logs a warning message.
func (ctx *BuildContext) Warningf(format string, args ...interface{}) {
	ctx.log(LogWarning, format, args...)
}

// Errorf logs an error message.
func (ctx *BuildContext) Errorf(format string, args ...interface{}) {
	ctx.log(LogError, format, args...)
}

func (ctx *BuildContext) log(category LogCategory, format string, args ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch category {
	case LogProgress:
		msg = "PROG " + msg
	case LogWarning:
		msg = "WARN " + msg
	case LogError:
		msg = "ERR  " + msg
	}
	ctx.messages[ctx.numMessages] = msg
	ctx.numMessages++
}

// LogCount returns the number of stored log messages.
func (ctx *BuildContext) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// LogText returns the i-th log message.
func (ctx *BuildContext) LogText(i int) string {
	return ctx.messages[i]
}

// DumpLog prints a header followed by every stored message to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.LogCount(); i++ {
		fmt.Println(ctx.messages[i])
	}
}

// StartTimer starts the timer for label.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

// StopTimer stops the timer for label and accumulates the elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total accumulated time for label, or -1 if
// timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return -1
	}
	return ctx.accTime[label]
}
