// Package log provides logging utilities including a debug mode with frame profiling.
// Enable debug mode by setting NAVMENU_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "navmenu-debug.log")

// InitDebug initializes debug logging if NAVMENU_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv("NAVMENU_DEBUG") != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	DebugLog.Print(profiler.Stats())
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// FrameProfiler tracks how long View takes per component.
type FrameProfiler struct {
	mu         sync.Mutex
	components map[string]*ComponentMetrics
	frameCount int64
	totalTime  time.Duration
	slowFrames int64
}

// ComponentMetrics tracks render timings for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

var profiler = &FrameProfiler{components: make(map[string]*ComponentMetrics)}

// Profiler returns the global frame profiler.
func Profiler() *FrameProfiler {
	return profiler
}

// StartRender begins timing a component render. Call the returned func when done.
func (p *FrameProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.record(component, time.Since(start))
	}
}

func (p *FrameProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component}
		p.components[component] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// RecordFrame records a complete frame. Frames over 16ms are logged.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if elapsed > 16*time.Millisecond {
		p.slowFrames++
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// Stats returns a summary of the recorded timings.
func (p *FrameProfiler) Stats() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n=== Frame Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d (slow: %d)\n", p.frameCount, p.slowFrames))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount)))
	}

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.MaxTime))
	}
	return sb.String()
}

// Reset clears all profiling data.
func (p *FrameProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.slowFrames = 0
}

// LayoutTrace logs placement and measurement events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// StateTrace logs menu state transitions.
func StateTrace(menu, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[STATE:%s] %s", menu, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// RenderTrace logs viewport and transition rendering events.
func RenderTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER] "+format, v...)
	}
}
