package sloghelper

import (
	"log/slog"
	"sync/atomic"
)

// A slog.Leveler that can be changed after the handler using it has been
// created. The zero value is slog.LevelInfo.
type Leveler struct {
	level int32
}

func (l *Leveler) Level() slog.Level {
	return slog.Level(atomic.LoadInt32(&l.level))
}

func (l *Leveler) SetLevel(level slog.Level) {
	atomic.StoreInt32(&l.level, int32(level))
}

// Switches between slog.LevelDebug and slog.LevelInfo.
func (l *Leveler) SetDebug(debug bool) {
	if debug {
		l.SetLevel(slog.LevelDebug)
	} else {
		l.SetLevel(slog.LevelInfo)
	}
}
