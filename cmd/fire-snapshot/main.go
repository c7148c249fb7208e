package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
)

// commandList collects repeatable tick=command flags.
type commandList []string

func (l *commandList) String() string {
	return strings.Join(*l, ",")
}

func (l *commandList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scheduledCommand struct {
	tick int
	cmd  fire.Command
}

var commandNames = map[string]fire.Command{
	"none":     fire.CommandWindNone,
	"left":     fire.CommandWindLeft,
	"right":    fire.CommandWindRight,
	"increase": fire.CommandIncreaseSource,
	"decrease": fire.CommandDecreaseSource,
}

func main() {
	width := flag.Int("width", 160, "grid width in cells")
	height := flag.Int("height", 96, "grid height in cells")
	cell := flag.Int("cell", 5, "size of a cell in the output image")
	ticks := flag.Int("ticks", 120, "ticks to simulate before the final frame")
	every := flag.Int("every", 0, "also write a frame every N ticks (0 disables)")
	seed := flag.Int64("seed", 42, "seed for the random stream")
	wind := flag.String("wind", fire.WindRight.String(), "initial wind: none, left or right")
	out := flag.String("out", "fire.png", "output PNG path; numbered frames get a _NNNN suffix")
	var commands commandList
	flag.Var(&commands, "at", "command at a tick in tick=none|left|right|increase|decrease form (repeatable)")
	flag.Parse()

	w, err := fire.ParseWind(*wind)
	if err != nil {
		log.Fatal(err)
	}
	schedule, err := parseSchedule(commands)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := fire.NewSim(fire.Config{Width: *width, Height: *height, Seed: *seed, Wind: w})
	if err != nil {
		log.Fatalf("create fire: %v", err)
	}

	next := 0
	for tick := 0; tick < *ticks; tick++ {
		for next < len(schedule) && schedule[next].tick == tick {
			if err := sim.Apply(schedule[next].cmd); err != nil {
				log.Fatalf("tick %d: %v", tick, err)
			}
			next++
		}
		sim.Step()
		if *every > 0 && (tick+1)%*every == 0 {
			if err := writeFrame(sim, *cell, framePath(*out, tick+1)); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err := writeFrame(sim, *cell, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s after %d ticks (seed %d, wind %s, source mean %.1f)\n",
		*out, *ticks, *seed, sim.Controller().Wind(), sim.Controller().Grid().SourceMean())
}

func parseSchedule(entries []string) ([]scheduledCommand, error) {
	schedule := make([]scheduledCommand, 0, len(entries))
	for _, kv := range entries {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("command %q is not in tick=command form", kv)
		}
		tick, err := strconv.Atoi(parts[0])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("command %q has an invalid tick", kv)
		}
		cmd, ok := commandNames[strings.ToLower(parts[1])]
		if !ok {
			return nil, fmt.Errorf("command %q is unknown", kv)
		}
		schedule = append(schedule, scheduledCommand{tick: tick, cmd: cmd})
	}
	sort.SliceStable(schedule, func(i, j int) bool { return schedule[i].tick < schedule[j].tick })
	return schedule, nil
}

func framePath(out string, tick int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(out, ext), tick, ext)
}

func writeFrame(sim *fire.Sim, cell int, path string) error {
	size := sim.Size()
	img, err := render.PaletteImage(sim.Cells(), size.W, size.H, sim.Palette(), cell)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
