// Package cli provides terminal I/O, output formatting, and
// meta-command dispatch for the Wick engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/mseward/wick/engine"
	"github.com/mseward/wick/engine/save"
	"github.com/mseward/wick/types"
)

// wrapWidth is the fixed output width of the plain terminal front end.
const wrapWidth = 80

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".wick", "saves"),
	}
}

// Run starts the game loop: intro, first look, then
// prompt → input → dispatch → output until EOF or /quit.
func (c *CLI) Run() {
	game := c.Engine.World().Game
	if game.Intro != "" {
		c.printLine(game.Intro)
		c.printLine("")
	}
	c.printResult(c.Engine.Step("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, "#") {
			continue // script comments
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true on /quit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true
	case "/save":
		c.cmdSave(arg)
	case "/load":
		c.cmdLoad(arg)
	case "/history":
		c.cmdHistory()
	case "/help":
		c.cmdHelp()
	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}
	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}
	rng := c.Engine.Combat().RNG()
	data, err := save.Save(c.Engine.World(), c.Engine.Store().History(), rng.Seed(), rng.Position())
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}
	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	save.ApplySave(c.Engine.World(), sd)
	c.Engine.RestoreCombat(sd.CombatSeed, sd.CombatPos)
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", name, sd.Turn))
	c.printResult(c.Engine.Step("look"))
}

// cmdHistory dumps the tail of the change history — the engine's
// audit log of everything that has happened.
func (c *CLI) cmdHistory() {
	history := c.Engine.Store().History()
	const tail = 20
	start := 0
	if len(history) > tail {
		start = len(history) - tail
	}
	c.printSystem(fmt.Sprintf("Change history (%d total, showing last %d):", len(history), len(history)-start))
	for i, ch := range history[start:] {
		c.printSystem(fmt.Sprintf("  %d. %s.%s: %v → %v", start+i+1, ch.Entity, ch.Attribute, ch.Old, ch.New))
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /history      — Show recent state changes",
		"  /trace        — Toggle per-turn change trace",
		"  /quit         — Exit game",
		"",
		"Game commands:",
		"  look (l)               — Describe the location",
		"  examine <thing> (x)    — Look closely at something",
		"  go <dir>               — Move (or just type n/s/e/w/u/d)",
		"  take / drop <item>     — Pick up or put down (also: take all)",
		"  open / close <thing>   — Open or close something",
		"  lock / unlock <thing> [with <key>]",
		"  wear / remove <item>   — Put on or take off clothing",
		"  read <thing>           — Read written text",
		"  light / extinguish <thing>",
		"  ask <character> [about <topic>]",
		"  put <item> in/on <thing>",
		"  attack <creature>",
		"  inventory (i)          — Check what you're carrying",
		"  wait (z)               — Let time pass",
		"  again (g)              — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Changes) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Changes: %d", len(result.Changes)))
	for _, ch := range result.Changes {
		c.printSystem(fmt.Sprintf("[trace]   %s.%s: %v → %v", ch.Entity, ch.Attribute, ch.Old, ch.New))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, wordwrap.String(text, wrapWidth))
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
