// Package prof starts and stops the runtime profilers for long commands.
package prof

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Config names the profile output paths. An empty path leaves the matching
// profiler off.
type Config struct {
	CPUPath   string
	HeapPath  string
	TracePath string
}

// Session owns the files of the active profilers. A nil session is
// finished; Stop is safe to call any number of times.
type Session struct {
	cpu      *os.File
	trace    *os.File
	heapPath string
	stopped  bool
}

// Start enables every profiler with a configured path. When a later
// profiler fails to start, the earlier ones are shut down again.
func Start(cfg Config) (*Session, error) {
	s := &Session{heapPath: cfg.HeapPath}
	if cfg.CPUPath != "" {
		f, err := os.Create(cfg.CPUPath)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		s.cpu = f
	}
	if cfg.TracePath != "" {
		f, err := os.Create(cfg.TracePath)
		if err != nil {
			_ = s.stopCPU()
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			_ = s.stopCPU()
			return nil, err
		}
		s.trace = f
	}
	return s, nil
}

// Stop shuts the profilers down in reverse start order, then writes the
// heap profile once the command's allocations have settled.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true
	var errs []error
	if s.trace != nil {
		trace.Stop()
		if err := s.trace.Close(); err != nil {
			errs = append(errs, err)
		}
		s.trace = nil
	}
	if err := s.stopCPU(); err != nil {
		errs = append(errs, err)
	}
	if s.heapPath != "" {
		if err := writeHeap(s.heapPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) stopCPU() error {
	if s.cpu == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := s.cpu.Close()
	s.cpu = nil
	return err
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
