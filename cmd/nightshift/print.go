package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/saaga0h/nightshift/internal/scheduler"
	"github.com/saaga0h/nightshift/internal/shift"
	"github.com/saaga0h/nightshift/internal/solar"
	"github.com/saaga0h/nightshift/pkg/config"
	"github.com/saaga0h/nightshift/pkg/redis"
)

const printHistoryLimit = 5

// printStatus writes the current period, target setting and today's solar
// events for loc
func printStatus(ctx context.Context, w io.Writer, cfg *config.Config, scheme shift.TransitionScheme,
	loc shift.Location, redisClient redis.Client, now time.Time) {

	period, progress, setting := evaluateNow(scheme, loc, now)

	if scheme.UseTime {
		fmt.Fprintf(w, "Dawn: %s, dusk: %s\n", formatRange(scheme.Dawn), formatRange(scheme.Dusk))
	} else {
		fmt.Fprintf(w, "Location: %s\n", loc.String())
		fmt.Fprintf(w, "Solar elevation: %.2f°\n", solar.Elevation(now, loc.Lat, loc.Lon))
	}

	switch period {
	case shift.PeriodTransition:
		fmt.Fprintf(w, "Period: %s (%.2f%% day)\n", period, progress*100)
	default:
		fmt.Fprintf(w, "Period: %s\n", period)
	}
	fmt.Fprintf(w, "Color temperature: %dK\n", setting.Temperature)
	fmt.Fprintf(w, "Brightness: %.2f\n", setting.Brightness)
	fmt.Fprintf(w, "Gamma: %.2f:%.2f:%.2f\n", setting.Gamma[0], setting.Gamma[1], setting.Gamma[2])

	if !scheme.UseTime {
		table := solar.FillTable(now, loc.Lat, loc.Lon)
		fmt.Fprintln(w, "Solar events today:")
		for _, e := range solar.Events() {
			if t, ok := table.Time(e); ok {
				fmt.Fprintf(w, "  %-20s %s\n", e.String()+":", t.In(now.Location()).Format("15:04"))
			} else {
				fmt.Fprintf(w, "  %-20s -\n", e.String()+":")
			}
		}
	}

	if cfg.EnableStatus && redisClient != nil {
		status := scheduler.NewRedisStatus(redisClient, cfg.ServiceName, 0, nil)
		history, err := status.History(ctx, printHistoryLimit)
		if err != nil {
			fmt.Fprintf(w, "Period history unavailable: %v\n", err)
			return
		}
		if len(history) > 0 {
			fmt.Fprintln(w, "Recent period changes:")
			for _, h := range history {
				fmt.Fprintf(w, "  %s  %s -> %s (%dK)\n",
					h.Timestamp.In(now.Location()).Format("2006-01-02 15:04"), h.From, h.To, h.Temperature)
			}
		}
	}
}

func formatRange(r shift.TimeRange) string {
	return fmt.Sprintf("%s-%s", formatClock(r.Start), formatClock(r.End))
}

func formatClock(offset int) string {
	return fmt.Sprintf("%02d:%02d", offset/3600, offset%3600/60)
}
