// Command vectrexcore runs the Vectrex core headlessly: load a BIOS and a
// cartridge, step a fixed number of frames, and report the render/audio
// output produced. It has no window, renderer, or audio device of its own —
// those are host concerns outside this core's scope.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"vectrexcore/internal/cpu"
	"vectrexcore/internal/debug"
	"vectrexcore/internal/emulator"
	"vectrexcore/internal/input"
	"vectrexcore/internal/render"
)

func main() {
	app := &cli.App{
		Name:  "vectrexcore",
		Usage: "Headless Vectrex core runner",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Usage: "path to a cartridge ROM image", Required: true},
			&cli.StringFlag{Name: "bios", Usage: "path to the 8192-byte BIOS ROM image", Required: true},
			&cli.IntFlag{Name: "frames", Usage: "number of frames to run", Value: 60},
			&cli.IntFlag{Name: "scale", Usage: "display scale (reported only; this binary has no renderer)", Value: 1},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warning, error, or none", Value: "warning"},
			&cli.BoolFlag{Name: "trace", Usage: "record a bounded instruction trace"},
			&cli.IntFlag{Name: "break-at-frame", Usage: "pause the debugger collaborator after this frame (0 disables)", Value: 0},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vectrexcore:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := debug.NewLogger(10000)
	logger.SetMinLevel(parseLogLevel(c.String("log-level")))
	for _, component := range []debug.Component{
		debug.ComponentCPU, debug.ComponentVIA, debug.ComponentPSG,
		debug.ComponentScreen, debug.ComponentMemory, debug.ComponentInput,
		debug.ComponentSystem,
	} {
		logger.SetComponentEnabled(component, true)
	}

	errs := debug.NewErrorHandler(logger, debug.PolicyLog)

	emu, err := emulator.New(errs)
	if err != nil {
		return fmt.Errorf("initializing core: %w", err)
	}

	biosData, err := os.ReadFile(c.String("bios"))
	if err != nil {
		return fmt.Errorf("reading bios rom: %w", err)
	}
	if err := emu.LoadBiosRom(biosData); err != nil {
		return err
	}

	romData, err := os.ReadFile(c.String("rom"))
	if err != nil {
		return fmt.Errorf("reading cartridge rom: %w", err)
	}
	if err := emu.LoadRom(romData); err != nil {
		return err
	}

	var tracer *debug.Tracer
	if c.Bool("trace") {
		tracer = debug.NewTracer(4096)
	}

	emu.Reset()

	in := input.NewState()
	const targetFrameSeconds = 1.0 / 50.0 // Vectrex's vertical rate
	frames := c.Int("frames")

	var renderCtx render.Context
	audioCtx := render.AudioContext{CpuCyclesPerAudioSample: 34}

	breakAtFrame := c.Int("break-at-frame")

	for i := 0; i < frames; i++ {
		renderCtx.Reset()
		audioCtx.Reset()
		if tracer != nil {
			runFrameTraced(emu, tracer, targetFrameSeconds, in, &renderCtx, &audioCtx)
		} else {
			emu.FrameUpdate(targetFrameSeconds, in, &renderCtx, &audioCtx)
		}

		if breakAtFrame > 0 && i+1 == breakAtFrame {
			if err := emu.ApplyEvents([]emulator.EmuEvent{{BreakIntoDebugger: true}}); err != nil {
				return err
			}
		}
	}

	fmt.Printf("ran %d frames at %dx scale: %d lines, %d audio samples in the final frame\n",
		frames, c.Int("scale"), len(renderCtx.Lines), len(audioCtx.Samples))
	if tracer != nil {
		fmt.Printf("trace: last %d instructions retained\n", tracer.Len())
	}
	if emu.Debugger.IsPaused() {
		fmt.Println("debugger paused: break-at-frame reached")
	}
	return nil
}

// runFrameTraced runs a cycle-budget loop like Emulator.FrameUpdate's but
// records one InstructionTrace per step, since the core itself never
// produces traces (the CPU's contract is to return only a cycle count).
// Unlike FrameUpdate, each call starts from a fresh budget: the overshoot
// of one frame is not carried into the next.
func runFrameTraced(emu *emulator.Emulator, tracer *debug.Tracer, deltaSeconds float64, in input.State, renderCtx *render.Context, audioCtx *render.AudioContext) {
	budget := deltaSeconds * cpu.Hz
	for budget > 0 {
		pre := snapshot(emu)
		cycles := emu.ExecuteInstruction(in, renderCtx, audioCtx)
		post := snapshot(emu)
		tracer.Push(debug.InstructionTrace{Pre: pre, Post: post, Cycles: cycles})
		budget -= float64(cycles)
	}
}

func snapshot(emu *emulator.Emulator) debug.RegisterSnapshot {
	r := &emu.CPU.Reg
	return debug.RegisterSnapshot{A: r.A, B: r.B, DP: r.DP, CC: r.CC, X: r.X, Y: r.Y, U: r.U, S: r.S, PC: r.PC}
}

func parseLogLevel(s string) debug.LogLevel {
	switch s {
	case "debug":
		return debug.LogLevelDebug
	case "info":
		return debug.LogLevelInfo
	case "warning":
		return debug.LogLevelWarning
	case "error":
		return debug.LogLevelError
	case "none":
		return debug.LogLevelNone
	default:
		return debug.LogLevelWarning
	}
}
