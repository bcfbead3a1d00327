package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field describes the play-field rectangle.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // margin kept free on the left, right and bottom
}

// Player holds the player car constants.
type Player struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	StartOffsetY  float64 `yaml:"start_offset_y"`
	MinYFraction  float64 `yaml:"min_y_fraction"`
	SteerDeadzone float64 `yaml:"steer_deadzone"`
}

// Jump holds the jump arc constants.
type Jump struct {
	Duration float64 `yaml:"duration"`
	Peak     float64 `yaml:"peak"`
	Epsilon  float64 `yaml:"epsilon"`
}

type Clock struct {
	MaxDelta float64 `yaml:"max_delta"`
}

// Scroll is the closed-form scroll speed curve: min(Max, Base + score*PerPoint).
type Scroll struct {
	Base     float64 `yaml:"base"`
	PerPoint float64 `yaml:"per_point"`
	Max      float64 `yaml:"max"`
}

// Spawn holds the spawner cadence and placement constants.
type Spawn struct {
	SingleChance         float64 `yaml:"single_chance"`
	SpawnMargin          float64 `yaml:"spawn_margin"`
	IntervalBase         float64 `yaml:"interval_base"`
	IntervalFloor        float64 `yaml:"interval_floor"`
	IntervalDropMax      float64 `yaml:"interval_drop_max"`
	IntervalScoreDivisor float64 `yaml:"interval_score_divisor"`
	RemovalMargin        float64 `yaml:"removal_margin"`
}

// Gap holds the gapped pair constants.
type Gap struct {
	Clearance    float64 `yaml:"clearance"`
	Base         float64 `yaml:"base"`
	ShrinkMax    float64 `yaml:"shrink_max"`
	ScoreDivisor float64 `yaml:"score_divisor"`
	SplitMin     float64 `yaml:"split_min"`
	SplitRange   float64 `yaml:"split_range"`
	Spacing      float64 `yaml:"spacing"`
}

// Decorations holds the lane dash and banner layout.
type Decorations struct {
	DashCount          int     `yaml:"dash_count"`
	DashSpacing        float64 `yaml:"dash_spacing"`
	DashWrapMargin     float64 `yaml:"dash_wrap_margin"`
	DashRecycleExtra   float64 `yaml:"dash_recycle_extra"`
	BannerCount        int     `yaml:"banner_count"`
	BannerSpacing      float64 `yaml:"banner_spacing"`
	BannerOffset       float64 `yaml:"banner_offset"`
	BannerWrapMargin   float64 `yaml:"banner_wrap_margin"`
	BannerRecycleExtra float64 `yaml:"banner_recycle_extra"`
	BannerText         string  `yaml:"banner_text"`
	Lanes              int     `yaml:"lanes"`
}

// Tuning is the complete set of game constants.
type Tuning struct {
	Field       Field       `yaml:"field"`
	Player      Player      `yaml:"player"`
	Jump        Jump        `yaml:"jump"`
	Clock       Clock       `yaml:"clock"`
	Scroll      Scroll      `yaml:"scroll"`
	Spawn       Spawn       `yaml:"spawn"`
	Gap         Gap         `yaml:"gap"`
	Decorations Decorations `yaml:"decorations"`

	// DifficultyScript optionally names a tengo script overriding the
	// scroll speed and spawn interval curves.
	DifficultyScript string `yaml:"difficulty_script"`
}

// Default returns the embedded tuning. The embedded document is validated by
// the package tests so a failure here is a build defect.
func Default() Tuning {
	t, err := Parse(defaultTuning)
	if err != nil {
		panic(fmt.Sprintf("config: embedded tuning: %v", err))
	}
	return t
}

// Parse decodes a tuning document on top of zero values and validates it.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Overlay decodes data on top of t so a partial document only changes the
// keys it names.
func Overlay(t Tuning, data []byte) (Tuning, error) {
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Marshal encodes the tuning back to YAML.
func (t Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("config: marshal tuning: %w", err)
	}
	return data, nil
}

// Validate rejects documents the game cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Field.Width > 0 && t.Field.Height > 0, "field size must be positive, got %gx%g", t.Field.Width, t.Field.Height)
	check(t.Field.Inset >= 0, "field inset must not be negative")
	check(t.Player.Width > 0 && t.Player.Height > 0, "player size must be positive")
	check(t.Player.Width+2*t.Field.Inset <= t.Field.Width, "player does not fit the field width")
	check(t.Player.Speed >= 0, "player speed must not be negative")
	check(t.Player.MinYFraction >= 0 && t.Player.MinYFraction < 1, "player min_y_fraction must be in [0,1)")
	check(t.Jump.Duration > 0, "jump duration must be positive")
	check(t.Jump.Epsilon > 0 && t.Jump.Epsilon < t.Jump.Duration, "jump epsilon must be in (0, duration)")
	check(t.Clock.MaxDelta > 0, "clock max_delta must be positive")
	check(t.Scroll.Base >= 0 && t.Scroll.Max >= t.Scroll.Base, "scroll needs 0 <= base <= max")
	check(t.Scroll.PerPoint >= 0, "scroll per_point must not be negative")
	check(t.Spawn.SingleChance >= 0 && t.Spawn.SingleChance <= 1, "spawn single_chance must be in [0,1]")
	check(t.Spawn.IntervalFloor > 0 && t.Spawn.IntervalBase >= t.Spawn.IntervalFloor, "spawn needs 0 < interval_floor <= interval_base")
	check(t.Spawn.IntervalScoreDivisor > 0, "spawn interval_score_divisor must be positive")
	check(t.Gap.ScoreDivisor > 0, "gap score_divisor must be positive")
	check(t.Gap.SplitMin >= 0 && t.Gap.SplitMin+t.Gap.SplitRange <= 1, "gap split must stay inside [0,1]")
	check(t.Gap.Spacing >= 0, "gap spacing must not be negative")
	check(t.Decorations.DashCount >= 0 && t.Decorations.BannerCount >= 0, "decoration counts must not be negative")
	check(t.Decorations.Lanes > 0, "decorations need at least one lane")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// CarSize is the box shared by the player and every obstacle.
func (t Tuning) CarSize() (w, h float64) {
	return t.Player.Width, t.Player.Height
}
