package difficulty

import (
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script overrides the closed-form curve with a tengo program. The program
// sees `score`, `base_scroll` and `base_interval` and may assign
// `scroll_speed` and/or `spawn_interval`. Anything it leaves unset, or any
// run failure, falls back to the curve. Results are clamped to the curve's
// ranges.
type Script struct {
	path     string
	curve    *Curve
	compiled *tengo.Compiled

	cached   bool
	score    int
	scroll   float64
	interval float64
	warned   bool
}

// LoadScript compiles the tengo file at path.
func LoadScript(path string, curve *Curve) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("difficulty: load %s: %w", path, err)
	}
	s, err := CompileScript(src, curve)
	if err != nil {
		return nil, fmt.Errorf("difficulty: %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// CompileScript compiles src against curve.
func CompileScript(src []byte, curve *Curve) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("score", 0)
	_ = script.Add("base_scroll", 0.0)
	_ = script.Add("base_interval", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return &Script{curve: curve, compiled: compiled}, nil
}

func (s *Script) ScrollSpeed(score int) float64 {
	s.eval(score)
	return s.scroll
}

func (s *Script) SpawnInterval(score int) float64 {
	s.eval(score)
	return s.interval
}

func (s *Script) eval(score int) {
	if s.cached && s.score == score {
		return
	}
	s.cached = true
	s.score = score

	baseScroll := s.curve.ScrollSpeed(score)
	baseInterval := s.curve.SpawnInterval(score)
	s.scroll, s.interval = baseScroll, baseInterval

	if err := s.run(score, baseScroll, baseInterval); err != nil {
		if !s.warned {
			log.Printf("difficulty script %s: %v; using built-in curve", s.path, err)
			s.warned = true
		}
		return
	}

	lo, hi := s.curve.ScrollRange()
	if s.compiled.IsDefined("scroll_speed") {
		s.scroll = clamp(s.compiled.Get("scroll_speed").Float(), lo, hi)
	}
	lo, hi = s.curve.IntervalRange()
	if s.compiled.IsDefined("spawn_interval") {
		s.interval = clamp(s.compiled.Get("spawn_interval").Float(), lo, hi)
	}
}

// run executes the script once. tengo panics on some runtime faults, such as
// integer division by zero; those come back as errors.
func (s *Script) run(score int, baseScroll, baseInterval float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("difficulty: script panicked: %v", r)
		}
	}()

	if err := s.compiled.Set("score", score); err != nil {
		return err
	}
	if err := s.compiled.Set("base_scroll", baseScroll); err != nil {
		return err
	}
	if err := s.compiled.Set("base_interval", baseInterval); err != nil {
		return err
	}
	return s.compiled.Run()
}

// Select returns the script at path when one is named, otherwise the curve.
// A script that fails to load is logged and the curve is used instead.
func Select(path string, curve *Curve) Model {
	if path == "" {
		return curve
	}
	s, err := LoadScript(path, curve)
	if err != nil {
		log.Printf("%v; using built-in curve", err)
		return curve
	}
	return s
}
