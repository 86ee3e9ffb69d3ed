package main

import (
	"time"

	"github.com/lixenwraith/baebae/audio"
	"github.com/lixenwraith/baebae/render"
)

// impactSound plays collision knocks; it has no haptics
type impactSound struct{ *audio.Service }

func (impactSound) Vibrate(...time.Duration) {}

// bell maps vibration patterns to the terminal bell; it has no sound
type bell struct{ *render.View }

func (bell) PlayImpact(float64) {}
