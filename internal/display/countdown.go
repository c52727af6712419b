package display

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultCountdownInterval = time.Minute
	StartedText              = "Event has started!"
)

type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Started bool `json:"started"`
}

// Remaining is the whole time left until target, truncated to minutes.
func Remaining(target, now time.Time) Countdown {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{Started: true}
	}
	return Countdown{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d/time.Hour) % 24,
		Minutes: int(d/time.Minute) % 60,
	}
}

func (c Countdown) String() string {
	if c.Started {
		return StartedText
	}
	return fmt.Sprintf("%dd %dh %dm", c.Days, c.Hours, c.Minutes)
}

// RunCountdown calls fn immediately and then every period with the recomputed countdown.
// It returns after delivering the started state or when ctx is done.
func RunCountdown(ctx context.Context, target time.Time, period time.Duration, clock func() time.Time, fn func(Countdown)) {
	if period <= 0 {
		period = DefaultCountdownInterval
	}
	if clock == nil {
		clock = time.Now
	}

	c := Remaining(target, clock())
	fn(c)
	if c.Started {
		return
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c := Remaining(target, clock())
			fn(c)
			if c.Started {
				return
			}
		}
	}
}
