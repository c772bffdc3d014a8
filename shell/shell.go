// Package shell is the interactive driver: a readline loop that owns the
// authoritative game board and exposes the engine through typed commands.
package shell

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/config"
	"github.com/Zoidburgh/HEXPIXI/move"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("options need a value; use -opt value")
	errExiting           = errors.New("exiting")
)

// ShellController owns the live game board, the played-move history, and
// the readline instance.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	b       *board.Board
	history []move.Move
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// CmdOptions holds the `-opt value` pairs parsed off a command line.
type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

// extractFields splits a command line into the command, its positional
// arguments, and its -opt value options. Quoting follows shell rules, so
// position strings with spaces can be passed as one argument.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	lastWasOption := false
	lastOption := ""
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") && len(field) > 1 {
			lastWasOption = true
			lastOption = strings.TrimPrefix(field, "-")
			continue
		}
		if lastWasOption {
			options[lastOption] = append(options[lastOption], field)
			lastWasOption = false
		} else {
			args = append(args, field)
		}
	}
	if lastWasOption {
		// do not allow dangling options
		return nil, errWrongOptionSyntax
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	if sc.l == nil {
		// tests drive handlers without a readline instance
		return
	}
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController builds the controller with a fresh default board,
// optionally seeded from the configured starting position.
func NewShellController(cfg *config.Config) *ShellController {
	sc := &ShellController{cfg: cfg, b: board.New()}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mhexpixi>\033[0m ",
		HistoryFile:     "/tmp/hexpixi_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l

	if seed := cfg.GetString(config.ConfigPosition); seed != "" {
		if err := sc.seedPosition(seed); err != nil {
			log.Err(err).Str("position", seed).Msg("could not load starting position")
		}
	}
	return sc
}

// seedPosition accepts either a sample-position name or a full position
// string.
func (sc *ShellController) seedPosition(seed string) error {
	if pos, ok := board.SamplePositions[seed]; ok {
		seed = pos
	}
	return sc.b.LoadPosition(seed)
}

func (sc *ShellController) standardModeSwitch(cmd *shellcmd, sig chan os.Signal) (*Response, error) {
	switch cmd.cmd {
	case "show", "s":
		return sc.show()
	case "ids":
		return sc.ids()
	case "moves", "gen":
		return sc.genMoves()
	case "play":
		return sc.play(cmd)
	case "undo":
		return sc.undo()
	case "solve":
		return sc.solve(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save()
	case "position":
		return sc.position(cmd)
	case "score":
		return sc.score()
	case "tiles":
		return sc.tiles()
	case "reset":
		return sc.reset()
	case "config":
		return sc.configCmd(cmd)
	case "help":
		return sc.help(cmd)
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errExiting
	}
	return nil, errors.New("command " + strconv.Quote(cmd.cmd) + " not found; try `help`")
}

// Loop reads and runs commands until exit, Ctrl-D, or a fatal readline
// error. Ctrl-C at the prompt only clears the current line.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, err := extractFields(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		resp, err := sc.standardModeSwitch(cmd, sig)
		if errors.Is(err, errExiting) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single command line and returns; used for one-shot
// binary invocations like `hexpixi solve 6`.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()

	cmd, err := extractFields(strings.TrimSpace(line))
	if err != nil {
		sc.showError(err)
		return
	}
	resp, err := sc.standardModeSwitch(cmd, sig)
	if err != nil && !errors.Is(err, errExiting) {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}
