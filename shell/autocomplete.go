package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command.
type CommandMetadata struct {
	Options []string // option names the command accepts, e.g. "-depth"
	Args    []string // possible values for positional arguments
}

var commandMetadata = map[string]CommandMetadata{
	"autoplay": {
		Options: []string{"-depth", "-time", "-file"},
	},
	"position": {
		Args: sampleNames(),
	},
	"help": {
		Args: helpTopicNames(),
	},
	"config": {
		Args: []string{
			config.ConfigDebug, config.ConfigMaxDepth,
			config.ConfigTimeLimitMs, config.ConfigTTSizeMB,
			config.ConfigVerbose, config.ConfigPosition,
			config.ConfigCPUProfile, config.ConfigMemProfile,
		},
	},
}

var commandNames = []string{
	"autoplay", "bye", "config", "exit", "gen", "help", "ids", "load",
	"moves", "play", "position", "reset", "s", "save", "score", "show",
	"solve", "tiles", "undo",
}

func sampleNames() []string {
	names := lo.Keys(board.SamplePositions)
	sort.Strings(names)
	return names
}

func helpTopicNames() []string {
	names := lo.Keys(helpTopics)
	sort.Strings(names)
	return names
}

// Do implements the readline.AutoComplete interface. It completes the
// command name in the first position and, further along the line, the
// command's options or argument values.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// mid-quote; fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		if metadata, exists := commandMetadata[cmdName]; exists {
			if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
				completions = metadata.Options
			} else {
				completions = metadata.Args
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
